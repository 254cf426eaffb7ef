package tree

// Module returns the tree describing the contents of a module.
func Module() Node {
	return New("Module", White, Red,
		New("Target Information", Gold, Red),
		New("Global Symbols", Gold, Red,
			New("[Global Variable]*", White, Red),
			New("[Function Declaration]*", White, Red),
			New("[Function Declaration]*", White, Green),
		),
		New("Other stuff", Gold, Red),
	)
}

// Function returns the tree describing the contents of a function.
func Function() Node {
	return New("Function", White, Green,
		New("[Argument]*", Gold, Green),
		New("[Entry Basic Block]*", Gold, Green),
		New("[Basic Block]*", Gold, Blue),
	)
}

// BasicBlock returns the tree describing the contents of a basic block.
func BasicBlock() Node {
	return New("Basic Block", White, Blue,
		New("Label", White, Green),
		New("[Phi Instruction]*", White, Green),
		New("[Instruction]*", White, Green),
	)
}

// Builtin returns the built-in diagrams in drawing order: module, function,
// basic block.
func Builtin() []Node {
	return []Node{Module(), Function(), BasicBlock()}
}
