package enhance

import "fmt"

// effectiveLimit returns the token target after subtracting the safety
// margin, so enhancement output lands under the hard limit even when
// the service counts tokens slightly differently than we do.
func effectiveLimit(tokenLimit int) int {
	return int(float64(tokenLimit) * (1 - DefaultSafetyMargin))
}

// buildEnhancementInstruction creates the meta-prompt asking the model
// to rewrite the original prompt for the target tier within the limit.
func buildEnhancementInstruction(original string, tokenLimit int, targetModel string) string {
	effective := effectiveLimit(tokenLimit)

	return fmt.Sprintf(`You are an expert prompt engineer specializing in optimizing prompts for Claude AI models. Your task is to enhance the following user prompt to maximize output quality while STRICTLY adhering to the specified token limit.

ORIGINAL PROMPT:
%s

TARGET MODEL: %s
MAXIMUM TOKEN LIMIT: %d tokens (with 5%% safety margin, aim for %d tokens)

ENHANCEMENT REQUIREMENTS:

1. **Structure & Clarity**
   - Break complex requests into logical sections
   - Use clear headings and organization
   - Number steps when sequence matters
   - Separate concerns into distinct parts

2. **Output Specifications**
   - Define desired length, format, and structure
   - Specify tone (formal, casual, technical, etc.)
   - Indicate preferred formatting (markdown, bullet points, paragraphs)
   - Set quality and depth expectations

3. **Context & Background**
   - Add relevant domain context
   - Specify the intended audience
   - Define success criteria
   - Clarify the task's purpose and goals

4. **Examples (when beneficial)**
   - Provide concrete examples of desired output
   - Show input/output patterns if applicable
   - Illustrate edge cases to handle

5. **Constraints & Requirements**
   - Make implicit constraints explicit
   - Define boundaries and limitations
   - Specify what to avoid or exclude
   - Set quality thresholds

6. **Role-Based Framing (when appropriate)**
   - Assign relevant expertise ("You are an expert...")
   - Define perspective or viewpoint
   - Set the appropriate knowledge level

7. **Reasoning Guidance (for complex tasks)**
   - Request step-by-step analysis
   - Ask for consideration of multiple perspectives
   - Specify decision-making criteria
   - Request explanation of reasoning

8. **Ambiguity Elimination**
   - Replace vague terms with precise language
   - Clarify potentially multiple interpretations
   - Define domain-specific terminology
   - Remove unnecessary jargon

TOKEN MANAGEMENT STRATEGY:

- **If token budget is generous (>2x original)**: Include comprehensive enhancements, multiple examples, extensive context, detailed formatting specs
- **If token budget is tight (<1.5x original)**: Prioritize core task clarity, essential constraints, minimal necessary context
- **If approaching limit**: Use concise language, combine related instructions, remove redundancy while preserving all critical information

CRITICAL RULES:
1. The enhanced prompt MUST stay within %d tokens (with safety margin)
2. Maintain the EXACT core intent of the original prompt
3. Do NOT introduce unintended assumptions or constraints
4. Do NOT change the fundamental task or goal
5. Follow Anthropic's prompt engineering best practices
6. Output ONLY the enhanced prompt, no commentary or explanations

Enhanced prompt:`, original, targetModel, tokenLimit, effective, effective)
}

// buildCompressionInstruction creates the retry prompt used when the
// enhanced text comes back over the limit.
func buildCompressionInstruction(text string, tokenLimit int) string {
	effective := effectiveLimit(tokenLimit)

	return fmt.Sprintf(`Compress the following prompt to fit within %d tokens while preserving ALL critical information and intent:

PROMPT TO COMPRESS:
%s

COMPRESSION RULES:
1. Remove redundant phrasing
2. Combine related instructions
3. Use more concise language
4. Keep all essential constraints and requirements
5. Maintain clarity and precision
6. Do NOT remove important context or specifications

Output ONLY the compressed prompt, nothing else:`, effective, text)
}
