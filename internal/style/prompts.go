package style

// AnalysisSystemPrompt frames the model as a literary style analyst.
const AnalysisSystemPrompt = `You are a literary style analyst. You produce precise, structured descriptions of how an author writes, suitable for later emulation.`

// AnalysisPrompt is the user prompt template for style analysis.
// Parameters: author name, text.
const AnalysisPrompt = `Analyze the following text by %s and extract:

1. **Tone & Voice**: Describe the overall tone (formal/casual, optimistic/pessimistic, etc.)
2. **Sentence Structure**: Analyze sentence length, complexity, use of lists/bullets
3. **Vocabulary & Diction**: Level of technical language, common word choices, jargon
4. **Rhetorical Patterns**: How they present arguments, use of examples, storytelling style
5. **Unique Stylistic Elements**: Signature phrases, punctuation habits, paragraph structure
6. **Content Themes**: What topics/concepts they frequently discuss
7. **Audience Engagement**: How they connect with readers (direct address, questions, etc.)

Text to analyze:
"""
%s
"""

Return your analysis as a structured JSON object with the above categories as keys.`

// InferAuthorPrompt is the user prompt template for author inference.
// Parameter: text excerpt.
const InferAuthorPrompt = `Analyze the following text and try to determine who the author is based on:
- Any self-references or mentions of their own name
- Writing style and topics that might indicate a specific well-known author
- Any biographical details or personal anecdotes mentioned
- The overall voice and perspective

Text to analyze:
"""
%s
"""

Return ONLY the author's name (first and last name if available). If you cannot determine the author with reasonable confidence, return "Unknown Author".`

// EmulationPrompt is the user prompt template for generating new
// content in an analyzed style. Parameters: topic, style description,
// topic again.
const EmulationPrompt = `You are a writing style emulator. Based on the following style analysis, write content about "%s" that matches this exact writing style:

STYLE ANALYSIS:
%s

INSTRUCTIONS:
- Match the tone, sentence structure, and vocabulary patterns exactly
- Use the same rhetorical approaches and stylistic elements
- Maintain the same level of technical language and audience engagement
- Include similar content themes where relevant
- Keep the same paragraph structure and flow

Topic to write about: %s

Generate 2-3 paragraphs in this style:`

// ExemplarSection is appended to the emulation prompt when the corpus
// yields reference passages. Parameter: joined passages.
const ExemplarSection = `

REFERENCE PASSAGES (actual writing by this author, match their texture):
---
%s
---`

// RewritePrompt is the user prompt template for rewriting user text in
// a mentor's style. Parameters: style description, user text.
const RewritePrompt = `You are an expert writing style editor. Your task is to rewrite the "USER TEXT" provided below so that it matches the style defined in the "STYLE ANALYSIS".

**Key Instructions:**
- **Preserve the Core Message:** The original meaning, message, and key information of the user's text MUST be maintained. Do not add new ideas or remove essential points.
- **Adopt the Style:** Infuse the rewritten text with the specified tone, voice, sentence structure, vocabulary, and rhetorical patterns from the style analysis.
- **Be Subtle:** The goal is a natural-sounding text, not a caricature. The style should be adopted seamlessly.

**STYLE ANALYSIS:**
---
%s
---

**USER TEXT:**
---
%s
---

**REWRITTEN TEXT (in the mentor's style):**`

// Mentor prompt templates keyed by use case. Parameter: style description.
var mentorPromptTemplates = map[string]string{
	"daily_reflection": `Based on this writing style analysis:
%s

Generate a daily reflection prompt that sounds like this author would write it. Include:
1. A thought-provoking question in their voice
2. A brief context or example in their style
3. An actionable step for self-improvement`,

	"decision_framework": `Using this writing style:
%s

Create a decision-making framework that sounds like this author. Include:
1. Key principles they would emphasize
2. Questions they would ask when making decisions
3. Their approach to weighing tradeoffs`,

	"habit_formation": `In the style of this analysis:
%s

Generate advice for building good habits that matches their tone and approach:
1. Their perspective on habit formation
2. Practical steps in their voice
3. How they would motivate someone to stay consistent`,

	"problem_solving": `Using this writing style:
%s

Create a problem-solving methodology in their voice:
1. How they would approach breaking down complex problems
2. Their method for generating solutions
3. Their approach to implementation and iteration`,
}

// MentorPromptNames lists the mentor prompt use cases in a stable order.
var MentorPromptNames = []string{
	"daily_reflection",
	"decision_framework",
	"habit_formation",
	"problem_solving",
}

// QuotePrompt asks for an inspirational quote in the mentor's voice.
// Parameters: mentor name, topic.
const QuotePrompt = `Generate an inspirational quote that %s would say about "%s".
Use their exact writing style and voice. Make it personal and actionable.`

// ActionPrompt asks for a concrete action in the mentor's voice.
// Parameters: mentor name, topic.
const ActionPrompt = `Based on %s's style and thinking, suggest one concrete action
someone could take today related to "%s". Write it in their voice.`

// ReflectionPrompt asks for a self-reflection question in the mentor's
// voice. Parameters: mentor name, topic.
const ReflectionPrompt = `Create a self-reflection question that %s would ask about "%s".
Use their style of inquiry and make it thought-provoking.`
