package tagger

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	sent "github.com/revelaction/zenkou/sentence"
)

const (
	eosLine   = "EOS"
	numFields = 10
)

// DefaultMeCabArgs make mecab print the ten tab separated columns read by
// ParseOutput: surface, reading, pronunciation, pos, pos1, pos2, pos3,
// inflection type, inflection form and base form.
var DefaultMeCabArgs = []string{
	`--node-format=%m\t%f[7]\t%f[8]\t%f[0]\t%f[1]\t%f[2]\t%f[3]\t%f[4]\t%f[5]\t%f[6]\n`,
	`--unk-format=%m\t%m\t%m\t%f[0]\t%f[1]\t%f[2]\t%f[3]\t%f[4]\t%f[5]\t%m\n`,
	`--eos-format=EOS\n`,
}

// MeCab runs an external mecab process once per sentence.
type MeCab struct {
	path string
	args []string
}

var _ Tagger = (*MeCab)(nil)

func NewMeCab(path string, args ...string) *MeCab {
	if path == "" {
		path = "mecab"
	}

	if len(args) == 0 {
		args = DefaultMeCabArgs
	}

	return &MeCab{path: path, args: args}
}

func (m *MeCab) Tag(ctx context.Context, text string) ([]sent.Token, error) {
	if isBlank(text) {
		return []sent.Token{}, nil
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, m.path, m.args...)
	cmd.Stdin = strings.NewReader(strings.TrimSpace(text))
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &Error{Name: "mecab", Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	return ParseOutput(&stdout), nil
}

// ParseOutput reads tokens in the ten column mecab layout. End of sentence
// lines, blank lines and lines with fewer than ten fields are skipped.
func ParseOutput(r io.Reader) []sent.Token {
	tokens := []sent.Token{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || line == eosLine {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < numFields {
			continue
		}

		tokens = append(tokens, sent.Token{
			Index:          len(tokens),
			Surface:        fields[0],
			Reading:        fields[1],
			Pronunciation:  fields[2],
			POS:            fields[3],
			POSSub1:        fields[4],
			POSSub2:        fields[5],
			POSSub3:        fields[6],
			InflectionType: fields[7],
			InflectionForm: fields[8],
			BaseForm:       fields[9],
		})
	}

	return tokens
}
