package llm

// TranslationPrompt asks for a bare Chinese translation of a Japanese
// sentence.
const TranslationPrompt = `你是一个专业的翻译官，精通将日语翻译为中文。现在，用户将会给你发送一句日语，你需要回复对应的中文。注意：你的回复里*只能*包含翻译之后的文本而不能包含任何的其他结果。`

// AnalysisPrompt asks for the judgment of the pre-verb of a Japanese
// sentence as a JSON object.
const AnalysisPrompt = `你是一名日语语言学研究者，熟悉IPA辞书的品词体系和《分類語彙表》。用户会发送一句日语，请找出句中的前项动词（句子的核心动词），并完成以下判断：
1. 前项动词：给出其原形。
2. 自他性判断：从「自动词（意志）」「自动词（无意志）」「他动词」中选择一个。
3. IPA辞书官方语义分类：给出IPA辞书中该词的品词及细分类。
4. 格助词判断：列出句中出现的格助词（が、を、に、へ、から、と、で）及其在句中的功能。
请*只*回复一个JSON对象，不要包含任何其他文本，格式如下：
{"前项动词": {"result": "...", "reason": "..."}, "自他性判断": {"result": "...", "reason": "..."}, "IPA辞书官方语义分类": {"result": "...", "reason": "..."}, "格助词判断": {"result": "...", "reason": "..."}}`

// AnalysisWithVerbPrompt is AnalysisPrompt for a sentence whose pre-verb is
// already known. The user message is built by WithVerb.
const AnalysisWithVerbPrompt = `你是一名日语语言学研究者，熟悉IPA辞书的品词体系和《分類語彙表》。用户会发送一句待分析的日语语句以及该句的前项动词，请围绕给定的前项动词完成以下判断：
1. 前项动词：确认其原形。
2. 自他性判断：从「自动词（意志）」「自动词（无意志）」「他动词」中选择一个。
3. IPA辞书官方语义分类：给出IPA辞书中该词的品词及细分类。
4. 格助词判断：列出与该动词相关的格助词（が、を、に、へ、から、と、で）及其在句中的功能。
请*只*回复一个JSON对象，不要包含任何其他文本，格式如下：
{"前项动词": {"result": "...", "reason": "..."}, "自他性判断": {"result": "...", "reason": "..."}, "IPA辞书官方语义分类": {"result": "...", "reason": "..."}, "格助词判断": {"result": "...", "reason": "..."}}`

// WithVerb builds the user message of AnalysisWithVerbPrompt.
func WithVerb(sentence, verb string) string {
	return "待分析语句：" + sentence + "\n前项动词：" + verb
}
