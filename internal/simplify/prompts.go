package simplify

import "fmt"

// simplifyPrompt wraps text in the plain-language rewrite instructions.
func simplifyPrompt(text string) string {
	return fmt.Sprintf(`You are an expert text simplifier trained to make complex documents, such as legal, academic, or policy texts, easy to understand for non-native English speakers and the general public.

Goal: Rewrite the input text in clear, natural English that remains accurate and complete, without sounding overly formal or academic.

Instructions:
Summarize the text into no more than three paragraphs (around 15 sentences total) and don't use em dashes.
Keep all essential information and maintain factual accuracy.
Use plain, natural English and short, direct sentences.
Replace any jargon or technical terms with simple explanations (in parentheses) when needed.
Maintain a neutral and professional tone, without examples, bullet points, or section headers.
The output should read like a short, informative summary written for a general audience.

Text to simplify:
%s`, text)
}

// translatePrompt wraps text in translation instructions for the target
// language.
func translatePrompt(text, targetLanguage string) string {
	return fmt.Sprintf(`Translate the following text to %s.
Preserve the meaning, tone, and paragraph structure.
Return only the translated text with no preamble or commentary.

Text to translate:
%s`, targetLanguage, text)
}
