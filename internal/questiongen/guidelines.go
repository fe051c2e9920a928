package questiongen

// Guideline text tables rendered into generation prompts. One description per
// difficulty level, one per Bloom level, and a per-type refinement for each
// (Bloom level, question type) pair. Labels outside the tables fall back to a
// generic description rather than failing, so caller-supplied custom labels
// still produce usable prompts.

var difficultyDescriptions = map[string]string{
	DifficultyBasic:        "recall of facts and basic understanding of concepts",
	DifficultyIntermediate: "application of concepts and analysis of relationships",
	DifficultyAdvanced:     "synthesis of multiple concepts and evaluation of complex scenarios",
}

// DifficultyDescription returns prompt guidance for a difficulty label.
func DifficultyDescription(difficulty string) string {
	if d, ok := difficultyDescriptions[difficulty]; ok {
		return d
	}
	return "appropriate college-level understanding"
}

var bloomDescriptions = map[string]string{
	BloomRemember: `Remember/Understand level - Assessment items that ask students to show they can recall basic information or understand basic concepts. Questions should focus on:
- Recalling definitions, facts, and basic information
- Understanding fundamental concepts
- Identifying key terms and their meanings
- Listing components or steps
- Outlining basic structures or processes

Examples: "What is the definition of...?", "List the components of...", "In what year was...", "What is the first stage of...?"`,

	BloomApply: `Apply level - Assessment items that ask students to apply their knowledge of a concept to a situation or problem. Questions should focus on:
- Using knowledge to solve problems
- Applying concepts to new situations
- Calculating using formulas or procedures
- Implementing procedures in given contexts
- Using information to complete tasks

Examples: "Solve for x in...", "Use the information in the table to calculate...", "Apply the concept of... to determine..."`,

	BloomAnalyze: `Analyze/Evaluate/Create level - Assessment items that require students to examine information by parts, make decisions, or create new solutions. Questions should focus on:
- Examining information to identify causes and effects
- Making decisions based on provided variables
- Comparing and contrasting different approaches
- Evaluating effectiveness of strategies
- Creating new solutions or ideas
- Analyzing scenarios to determine best outcomes
- Synthesizing information from multiple sources

Examples: "Based on the scenario, which strategy would maximize...", "Given the situation, rank the following actions...", "Which combination of factors would be most effective...", "Analyze the data to determine..."`,
}

// BloomDescription returns prompt guidance for a Bloom level label.
func BloomDescription(bloom string) string {
	if d, ok := bloomDescriptions[bloom]; ok {
		return d
	}
	return "appropriate cognitive level thinking"
}

var typeGuidelines = map[QuestionType]map[string]string{
	TypeMCQ: {
		BloomRemember: `For Multiple Choice Questions at Remember level:
- Focus on direct recall of facts, definitions, and basic concepts
- Stem should ask for specific information covered in the material
- Correct answer should be clearly stated in the content
- Distractors should be plausible but clearly incorrect facts/terms
- Avoid scenario-based questions at this level`,
		BloomApply: `For Multiple Choice Questions at Apply level:
- Present a scenario or problem that requires applying learned concepts
- Stem should describe a situation where students must use their knowledge
- Correct answer should demonstrate proper application of concepts
- Distractors should represent common misapplications or errors
- Include sufficient context for students to apply their knowledge`,
		BloomAnalyze: `For Multiple Choice Questions at Analyze level:
- Present complex scenarios requiring analysis of multiple variables
- Stem should require students to examine, compare, or evaluate information
- Correct answer should reflect sophisticated analysis or synthesis
- Distractors should represent superficial or incomplete analysis
- Questions should require higher-order thinking beyond simple application`,
	},
	TypeTrueFalse: {
		BloomRemember: `For True/False Questions at Remember level:
- State facts, definitions, or basic concepts clearly
- Focus on information directly covered in the material
- Statements should test recall of specific details
- False statements should contradict clearly stated facts
- Avoid complex relationships or interpretations`,
		BloomApply: `For True/False Questions at Apply level:
- Present statements about applying concepts to situations
- Focus on whether procedures or principles are correctly applied
- Include statements about cause-and-effect relationships
- Test understanding of when and how to use specific concepts
- Statements should require more than simple recall`,
		BloomAnalyze: `For True/False Questions at Analyze level:
- Present statements requiring analysis of complex relationships
- Focus on evaluations, comparisons, or synthesis of information
- Include statements about effectiveness, appropriateness, or best practices
- Test ability to analyze scenarios and draw conclusions
- Statements should require sophisticated reasoning`,
	},
	TypeFillInBlank: {
		BloomRemember: `For Fill-in-the-Blank Questions at Remember level:
- Remove key terms, definitions, or factual information
- Focus on vocabulary, names, dates, and basic concepts
- Blanks should test recall of specific information
- Context should clearly point to the expected answer
- Avoid complex relationships or applications`,
		BloomApply: `For Fill-in-the-Blank Questions at Apply level:
- Remove answers that require applying formulas or procedures
- Focus on results of calculations or applications
- Present scenarios where students must determine outcomes
- Blanks should test ability to use concepts in context
- Include sufficient information for students to work through problems`,
		BloomAnalyze: `For Fill-in-the-Blank Questions at Analyze level:
- Remove conclusions, evaluations, or synthesis results
- Focus on analytical outcomes or judgments
- Present complex scenarios requiring analysis
- Blanks should test higher-order thinking results
- Require students to analyze information to determine answers`,
	},
}

// QuestionGuidelines returns the combined Bloom description and per-type
// refinement for one (bloom, type) pair.
func QuestionGuidelines(bloom string, qt QuestionType) string {
	base := BloomDescription(bloom)
	if perType, ok := typeGuidelines[qt]; ok {
		if g, ok := perType[bloom]; ok {
			return base + "\n\n" + g
		}
	}
	return base
}

// authoringGuidelines is the publisher style guide appended to every
// generation prompt.
const authoringGuidelines = `
You are an educational assessment expert creating questions and quizzes for digital courseware. Follow these guidelines:

OBJECTIVES AND QUALITY:
- Each question must directly support at least one measurable learning objective
- Match question difficulty to the objective's Bloom's Taxonomy level
- Ensure content is error-free: correct answers, terminology, factual accuracy
- Use standard American English following Merriam-Webster's Collegiate Dictionary (11th Ed) and Chicago Manual of Style (16th Ed)

QUESTION STEMS:
- Make stems meaningful standalone, presenting a definite problem
- Ensure readability outside the section context
- Remove irrelevant material from stems
- Use negative statements only when learning objectives require it
- Format as questions or partial sentences (avoid initial/interior blanks)
- Match the core text's terminology and tone

ANSWER OPTIONS:
- Create strong distractors reflecting common misconceptions
- All options must be of same type/category and similar length
- NEVER use "all/none of the above" or "both a and b" options
- Ensure grammatical consistency with the stem
- Avoid repeating key words from the stem in the correct answer
- Avoid absolute determiners (All, Always, Never) in incorrect options
- Ensure distractors are unequivocally wrong with no debate possibility

HIGHER-ORDER THINKING:
- Analysis questions: inference, cause/effect, conclusions, comparisons
- Evaluation questions: judgment, advantages/limitations, hypothesizing
- Provide sufficient context or scenarios for complex questions

INCLUSIVITY AND ACCESSIBILITY:
- Use diverse names reflecting student diversity
- Avoid content reinforcing stereotypes or revealing biases
- Consider varied social/cultural experiences of students
- Ensure equivalent experience for students with disabilities

CRITICAL REQUIREMENTS:
- Never create subjective questions without definitive correct answers
- Each question must stand independently (no references to other questions)
- Questions must be answerable based solely on provided content
- Include feedback explaining why correct/incorrect answers are right/wrong
- Review for grammar, spelling, factual accuracy before submission

For each question, tag all applicable learning objectives and ensure the question provides valuable assessment that genuinely measures student understanding.
`
