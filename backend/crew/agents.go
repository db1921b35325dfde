package crew

// The two roles of the conversation pipeline: the first agent distills the
// user's input, the second turns that distillation into the reply.

var inputProcessorAgent = &Agent{
	Role: "Input Analysis Specialist",
	Goal: "Analyze and understand the user's input, extracting key information " +
		"or rephrasing it for clarity if needed. Prepare it for response generation.",
	Backstory: "You are an expert at dissecting user queries. Your primary function is to " +
		"understand the core intent of the input and prepare a concise summary or " +
		"the essential parts of it that the next agent will use to formulate a response. " +
		"You do not generate the final answer yourself but ensure the groundwork is perfectly laid.",
}

var responseGeneratorAgent = &Agent{
	Role: "Content Generation Expert",
	Goal: "Generate a helpful and relevant final response to the user based on the " +
		"processed input provided by the Input Analysis Specialist.",
	Backstory: "You are a skilled content creator, adept at crafting clear and concise answers. " +
		"You take the analyzed input from your colleague and formulate a final response. " +
		"Your aim is to be directly helpful to the user.",
}

var processInputTask = &Task{
	Description: "Take the user's original input: '{user_input}'. " +
		"Analyze it, understand its core meaning, and if necessary, rephrase it or " +
		"extract the most critical components. Your output should be a clear, processed " +
		"version of the input, ready for the response generation stage.",
	ExpectedOutput: "A string containing the processed version of the input.",
	Agent:          inputProcessorAgent,
}

var generateResponseTask = &Task{
	Description: "Using the processed input from the Input Analysis Specialist, " +
		"craft a final, user-facing response. Ensure your response directly addresses " +
		"the user's original query based on this processed information.",
	ExpectedOutput: "A string containing the final answer to be presented to the user.",
	Agent:          responseGeneratorAgent,
}

// NewConversationCrew wires the two-step pipeline. Kickoff expects a
// "user_input" entry in its inputs map.
func NewConversationCrew(model Model) *Crew {
	return New(model, processInputTask, generateResponseTask)
}
