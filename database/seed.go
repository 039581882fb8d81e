package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"skillcheck/internal/model"
)

// SeedQuestionBank loads the built-in template questions into an empty bank
// so a fresh deployment can compose assessments immediately. A non-empty
// bank is left untouched.
func SeedQuestionBank(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("questions", count).Msg("Question bank already populated, skipping seed")
		return nil
	}

	questions := seedQuestions()
	if err := db.Create(&questions).Error; err != nil {
		log.Error().Err(err).Msg("Question bank seed failed")
		return err
	}
	log.Info().Int("questions", len(questions)).Msg("Question bank seeded")
	return nil
}

func mcq(skill string, difficulty model.Difficulty, points int, text string, options []string, answer, explanation string) model.Question {
	return model.Question{
		Skill:           skill,
		Type:            model.QuestionTypeMultipleChoice,
		Difficulty:      difficulty,
		Text:            text,
		Options:         model.OptionsJSON(options),
		ReferenceAnswer: answer,
		Explanation:     explanation,
		Points:          points,
	}
}

func aptitude(text string, options []string, answer, explanation string) model.Question {
	return model.Question{
		Skill:           "Aptitude",
		Type:            model.QuestionTypeAptitude,
		Difficulty:      model.DifficultyIntermediate,
		Text:            text,
		Options:         model.OptionsJSON(options),
		ReferenceAnswer: answer,
		Explanation:     explanation,
		Points:          5,
	}
}

func seedQuestions() []model.Question {
	qs := []model.Question{
		// Python, beginner
		mcq("Python", model.DifficultyBeginner, 10,
			"What is the output of: print(type([]))?",
			[]string{"<class 'list'>", "<class 'dict'>", "<class 'tuple'>", "<class 'set'>"},
			"<class 'list'>", "[] creates an empty list, and type() returns the class type."),
		mcq("Python", model.DifficultyBeginner, 10,
			"Which keyword is used to define a function in Python?",
			[]string{"function", "def", "func", "define"},
			"def", "The 'def' keyword is used to define functions in Python."),
		mcq("Python", model.DifficultyBeginner, 10,
			"What is the correct file extension for Python files?",
			[]string{".pyth", ".pt", ".py", ".pe"},
			".py", "Python source files use the .py extension."),
		mcq("Python", model.DifficultyBeginner, 10,
			"How do you insert comments in Python code?",
			[]string{"//", "#", "/* */", "--"},
			"#", "Python uses the # symbol for single-line comments."),
		mcq("Python", model.DifficultyBeginner, 10,
			"Which of these is NOT a core data type in Python?",
			[]string{"List", "Dictionary", "Tuple", "Class"},
			"Class", "Class is a blueprint for objects, not a primitive/core data type like List or Tuple."),
		mcq("Python", model.DifficultyBeginner, 10,
			"What is the output of: 3 ** 2?",
			[]string{"6", "9", "5", "8"},
			"9", "** is the exponentiation operator (3 to the power of 2)."),

		// Python, intermediate
		mcq("Python", model.DifficultyIntermediate, 20,
			"What is a list comprehension in Python?",
			[]string{"A way to create lists using a compact syntax", "A method to compress lists", "A function to understand lists", "A debugging tool"},
			"A way to create lists using a compact syntax", "List comprehensions provide a concise way to create lists based on existing lists."),
		mcq("Python", model.DifficultyIntermediate, 20,
			"What is the purpose of the 'self' keyword?",
			[]string{"It refers to the class itself", "It refers to the instance of the class", "It is a reserved keyword for import", "It makes a variable global"},
			"It refers to the instance of the class", "self represents the instance of the class and binds attributes with the given arguments."),
		mcq("Python", model.DifficultyIntermediate, 20,
			"Which collection type is immutable?",
			[]string{"List", "Set", "Dictionary", "Tuple"},
			"Tuple", "Tuples are immutable sequences, unlike lists or dictionaries."),
		mcq("Python", model.DifficultyIntermediate, 20,
			"What does the *args parameter do?",
			[]string{"Passes keyword arguments", "Passes a variable number of non-keyword arguments", "Multiplies arguments", "Imports arguments"},
			"Passes a variable number of non-keyword arguments", "*args allows you to pass a variable number of positional arguments to a function."),
		mcq("Python", model.DifficultyIntermediate, 20,
			"How do you handle exceptions in Python?",
			[]string{"try-except", "do-catch", "try-catch", "catch-throw"},
			"try-except", "Python uses try and except blocks to handle errors and exceptions."),
		mcq("Python", model.DifficultyIntermediate, 20,
			"What is a decorator?",
			[]string{"A function that modifies the behavior of another function", "A design pattern for classes", "A UI component", "A variable type"},
			"A function that modifies the behavior of another function", "Decorators allow you to wrap another function in order to extend the behavior of the wrapped function."),

		// Python, advanced
		mcq("Python", model.DifficultyAdvanced, 30,
			"What is the difference between __str__ and __repr__?",
			[]string{"__str__ is for end users, __repr__ is for developers", "They are the same", "__str__ is faster", "__repr__ is deprecated"},
			"__str__ is for end users, __repr__ is for developers", "__str__ returns a readable string, __repr__ returns an unambiguous representation."),
		mcq("Python", model.DifficultyAdvanced, 30,
			"What is the Global Interpreter Lock (GIL)?",
			[]string{"A lock that prevents multiple threads from executing bytecodes at once", "A security feature", "A database lock", "A module importer"},
			"A lock that prevents multiple threads from executing bytecodes at once", "The GIL is a mutex that protects access to Python objects, preventing multiple threads from executing Python bytecodes at once."),
		mcq("Python", model.DifficultyAdvanced, 30,
			"What is a generator in Python?",
			[]string{"A function that returns an iterator using 'yield'", "A tool to create lists", "A random number generator", "A compiler"},
			"A function that returns an iterator using 'yield'", "Generators are functions that return an iterator and yield a sequence of values one at a time."),
		mcq("Python", model.DifficultyAdvanced, 30,
			"What is the result of using 'is' vs '=='?",
			[]string{"'is' checks identity, '==' checks equality", "'is' checks equality, '==' checks identity", "They are identical", "'is' is deprecated"},
			"'is' checks identity, '==' checks equality", "'is' checks if two variables point to the same object in memory, '==' checks if their values are equal."),
		mcq("Python", model.DifficultyAdvanced, 30,
			"What is correct about Python's memory management?",
			[]string{"It uses manual memory management", "It uses private heap space and garbage collection", "It relies solely on OS", "It has no memory management"},
			"It uses private heap space and garbage collection", "Python memory management involves a private heap containing all Python objects, managed by the Python memory manager."),
		mcq("Python", model.DifficultyAdvanced, 30,
			"What are metaclasses?",
			[]string{"Classes of classes", "Special methods", "Abstract base classes", "Imported modules"},
			"Classes of classes", "A metaclass is a class whose instances are classes. It defines how a class behaves."),

		// JavaScript, beginner
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"What does the 'let' keyword do in JavaScript?",
			[]string{"Declares a block-scoped variable", "Declares a constant", "Declares a global variable", "Imports a module"},
			"Declares a block-scoped variable", "'let' declares a block-scoped local variable."),
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"Which keyword declares a binding that cannot be reassigned?",
			[]string{"var", "let", "const", "static"},
			"const", "const declares a block-scoped binding whose reference cannot be reassigned."),
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"What is the result of: typeof null?",
			[]string{"'null'", "'object'", "'undefined'", "'number'"},
			"'object'", "typeof null returns 'object', a historical quirk of the language."),
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"Which operator checks equality without type coercion?",
			[]string{"==", "===", "=", "!="},
			"===", "=== is strict equality: no type coercion is performed."),
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"How do you write a single-line comment in JavaScript?",
			[]string{"#", "//", "<!--", "--"},
			"//", "JavaScript uses // for single-line comments."),
		mcq("JavaScript", model.DifficultyBeginner, 10,
			"Which method adds an element to the end of an array?",
			[]string{"push()", "pop()", "shift()", "unshift()"},
			"push()", "push() appends one or more elements to the end of an array."),

		// JavaScript, intermediate
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What is a closure in JavaScript?",
			[]string{"A function with access to outer scope", "A way to close files", "An error handling mechanism", "A loop terminator"},
			"A function with access to outer scope", "A closure gives you access to an outer function's scope from an inner function."),
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What does Promise.all do?",
			[]string{"Resolves when all promises resolve", "Resolves when the first promise resolves", "Runs promises sequentially", "Cancels pending promises"},
			"Resolves when all promises resolve", "Promise.all resolves with all values once every promise resolves, and rejects on the first rejection."),
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What is the value of 'this' inside an arrow function?",
			[]string{"The global object", "The 'this' of the enclosing lexical scope", "The function itself", "Always undefined"},
			"The 'this' of the enclosing lexical scope", "Arrow functions do not bind their own 'this'; they inherit it from the surrounding scope."),
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What does Array.prototype.map return?",
			[]string{"A new array of transformed elements", "The mutated original array", "A single accumulated value", "An iterator"},
			"A new array of transformed elements", "map builds a new array from the results of the callback; the original is untouched."),
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What is hoisting?",
			[]string{"Moving declarations to the top of their scope", "Lifting DOM nodes", "A memory optimization", "An event bubbling phase"},
			"Moving declarations to the top of their scope", "Declarations are processed before any code executes, as if moved to the top of their scope."),
		mcq("JavaScript", model.DifficultyIntermediate, 20,
			"What does the spread operator (...) do?",
			[]string{"Expands an iterable into individual elements", "Declares variadic functions only", "Deep-clones objects", "Terminates loops"},
			"Expands an iterable into individual elements", "Spread expands an iterable (or object properties) in places expecting individual values."),

		// JavaScript, advanced
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"What is the event loop in JavaScript?",
			[]string{"Mechanism for handling async operations", "A for loop variant", "An event listener", "A debugging tool"},
			"Mechanism for handling async operations", "The event loop handles asynchronous callbacks in JavaScript."),
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"How do microtasks relate to macrotasks?",
			[]string{"The microtask queue drains before the next macrotask", "Macrotasks always run first", "They share one queue", "Microtasks run only on page load"},
			"The microtask queue drains before the next macrotask", "Promise callbacks are microtasks; the queue is drained to empty after each macrotask."),
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"What does a WeakMap allow?",
			[]string{"Object keys that can be garbage-collected", "Faster string keys", "Ordered iteration", "JSON serialization"},
			"Object keys that can be garbage-collected", "WeakMap keys are held weakly, so entries do not prevent garbage collection of the key object."),
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"How is a generator function declared?",
			[]string{"function*", "async function", "=>", "yield function"},
			"function*", "Generator functions are declared with function* and produce values with yield."),
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"What is prototypal inheritance?",
			[]string{"Objects inheriting directly from other objects", "Class-based copying", "Compile-time inheritance", "Module linking"},
			"Objects inheriting directly from other objects", "Each object has a prototype chain; property lookup walks the chain of linked objects."),
		mcq("JavaScript", model.DifficultyAdvanced, 30,
			"What does 'use strict' change?",
			[]string{"Makes silent errors throw and tightens semantics", "Enables ES modules", "Only speeds up the parser", "Disables closures"},
			"Makes silent errors throw and tightens semantics", "Strict mode turns silent failures into thrown errors and forbids some unsafe constructs."),

		// React, beginner
		mcq("React", model.DifficultyBeginner, 10,
			"What is JSX in React?",
			[]string{"JavaScript XML syntax extension", "A CSS framework", "A testing library", "A state management tool"},
			"JavaScript XML syntax extension", "JSX is a syntax extension that allows writing HTML-like code in JavaScript."),
		mcq("React", model.DifficultyBeginner, 10,
			"Which hook adds local state to a function component?",
			[]string{"useState", "useEffect", "useContext", "useRef"},
			"useState", "useState returns the current state value and a setter for it."),
		mcq("React", model.DifficultyBeginner, 10,
			"How does a parent component pass data to a child?",
			[]string{"Props", "State", "Refs", "Reducers"},
			"Props", "Props flow one way, from parent to child."),
		mcq("React", model.DifficultyBeginner, 10,
			"What does a React component return?",
			[]string{"Renderable elements (JSX)", "CSS rules", "A database query", "An HTTP response"},
			"Renderable elements (JSX)", "Components return a description of the UI as elements, usually written in JSX."),
		mcq("React", model.DifficultyBeginner, 10,
			"Which attribute replaces 'class' in JSX?",
			[]string{"className", "classList", "cssClass", "styleClass"},
			"className", "'class' is a reserved word in JavaScript, so JSX uses className."),
		mcq("React", model.DifficultyBeginner, 10,
			"What is the correct way to render a list in React?",
			[]string{"Map over the items and give each element a key", "Use a for loop inside JSX", "Concatenate HTML strings", "Use document.createElement"},
			"Map over the items and give each element a key", "Lists are rendered by mapping data to elements, each with a stable key."),

		// React, intermediate
		mcq("React", model.DifficultyIntermediate, 20,
			"What is the purpose of the useEffect hook?",
			[]string{"Handle side effects in functional components", "Create state variables", "Define component props", "Style components"},
			"Handle side effects in functional components", "useEffect is used for side effects like data fetching, subscriptions, etc."),
		mcq("React", model.DifficultyIntermediate, 20,
			"What is lifting state up?",
			[]string{"Moving shared state to the closest common ancestor", "Storing state in the DOM", "Promoting state to globals", "Caching state in localStorage"},
			"Moving shared state to the closest common ancestor", "Shared state lives in the nearest common ancestor and flows down as props."),
		mcq("React", model.DifficultyIntermediate, 20,
			"What does useMemo do?",
			[]string{"Memoizes a computed value between renders", "Creates component state", "Runs side effects", "Subscribes to context"},
			"Memoizes a computed value between renders", "useMemo recomputes the value only when its dependencies change."),
		mcq("React", model.DifficultyIntermediate, 20,
			"What is a controlled component?",
			[]string{"A form element whose value is driven by React state", "A component with no props", "A memoized component", "A class component"},
			"A form element whose value is driven by React state", "The input's value comes from state and changes go through a handler."),
		mcq("React", model.DifficultyIntermediate, 20,
			"When does useEffect with an empty dependency array run?",
			[]string{"Once after the first render", "On every render", "Never", "Only on unmount"},
			"Once after the first render", "An empty dependency array means the effect has no reactive inputs, so it runs once."),
		mcq("React", model.DifficultyIntermediate, 20,
			"What is the purpose of keys in lists?",
			[]string{"Help React identify which items changed", "Style list items", "Sort the list", "Encrypt item data"},
			"Help React identify which items changed", "Keys let the reconciler match elements across renders instead of recreating them."),

		// React, advanced
		mcq("React", model.DifficultyAdvanced, 30,
			"What is React reconciliation?",
			[]string{"Process of updating the DOM efficiently", "A state management pattern", "A routing mechanism", "A testing strategy"},
			"Process of updating the DOM efficiently", "Reconciliation is React's algorithm for efficiently updating the DOM."),
		mcq("React", model.DifficultyAdvanced, 30,
			"What problem do error boundaries solve?",
			[]string{"Catching render errors in the component tree", "Handling HTTP errors", "Validating props", "Linting JSX"},
			"Catching render errors in the component tree", "An error boundary catches errors thrown during rendering below it and shows a fallback UI."),
		mcq("React", model.DifficultyAdvanced, 30,
			"What does React.memo do?",
			[]string{"Skips re-render when props are shallow-equal", "Deep-clones props", "Caches network requests", "Replaces useMemo"},
			"Skips re-render when props are shallow-equal", "React.memo wraps a component and bails out of re-rendering for equal props."),
		mcq("React", model.DifficultyAdvanced, 30,
			"Why must hooks be called at the top level of a component?",
			[]string{"React relies on a stable call order between renders", "They are asynchronous", "They require global scope", "They mutate the DOM"},
			"React relies on a stable call order between renders", "Hook state is matched by call position, so the order must be identical on every render."),
		mcq("React", model.DifficultyAdvanced, 30,
			"What is concurrent rendering?",
			[]string{"React preparing multiple UI versions without blocking", "Multi-threaded DOM updates", "Server-side rendering", "Double buffering the canvas"},
			"React preparing multiple UI versions without blocking", "Concurrent rendering lets React interrupt and resume work so urgent updates stay responsive."),
		mcq("React", model.DifficultyAdvanced, 30,
			"What is the children prop?",
			[]string{"Content nested between a component's opening and closing tags", "A list of child class components", "The DOM subtree", "An array of keys"},
			"Content nested between a component's opening and closing tags", "Whatever is nested inside a component's tags arrives as props.children."),

		// Aptitude pool, skill-agnostic
		aptitude("What is the next number in the series: 2, 4, 8, 16, ...?",
			[]string{"30", "32", "34", "36"}, "32", "The series doubles each time."),
		aptitude("If a shirt costs $20 after a 20% discount, what was the original price?",
			[]string{"$22", "$24", "$25", "$30"}, "$25", "x * 0.8 = 20 => x = 20 / 0.8 = 25"),
		aptitude("Train A runs at 60km/h, Train B at 40km/h. How far apart are they after 2 hours if strictly moving away?",
			[]string{"100km", "200km", "150km", "50km"}, "200km", "(60 + 40) * 2 = 200km"),
		aptitude("Which word is the odd one out?",
			[]string{"Apple", "Banana", "Carrot", "Grape"}, "Carrot", "Carrot is a vegetable, others are fruits."),
		aptitude("Complete the series: 3, 5, 9, 17, ...",
			[]string{"25", "33", "35", "41"}, "33", "Difference doubles: +2, +4, +8, +16. 17+16=33."),
		aptitude("If P is the brother of Q, and Q is the sister of R, how is P related to R?",
			[]string{"Brother", "Sister", "Father", "Cousin"}, "Brother", "P is male (brother), so P is R's brother."),

		// Coding challenges
		{
			Skill:           "Python",
			Type:            model.QuestionTypeCoding,
			Difficulty:      model.DifficultyAdvanced,
			Text:            "Algorithmic Challenge: Implement a Binary Search algorithm to find a target in a sorted array. Return the index of the target, or -1 if absent.",
			ReferenceAnswer: "O(log n) search over a sorted array: repeatedly halve the search window by comparing the middle element with the target; return its index or -1.",
			Explanation:     "Standard O(log n) search algorithm.",
			Points:          30,
			CodeTemplate:    "def binary_search(arr, target):\n    # Write your code here\n    pass",
		},
		{
			Skill:           "Python",
			Type:            model.QuestionTypeCoding,
			Difficulty:      model.DifficultyIntermediate,
			Text:            "Write a function 'process_data' that takes a list of dictionaries and returns a summary statistic (e.g., average age).",
			ReferenceAnswer: "Iterates the list, aggregates the numeric field and returns the mean; must handle an empty input without raising.",
			Explanation:     "Requires list processing and aggregation.",
			Points:          20,
			CodeTemplate:    "def process_data(data):\n    # Write your code here\n    pass",
		},
		{
			Skill:           "JavaScript",
			Type:            model.QuestionTypeCoding,
			Difficulty:      model.DifficultyIntermediate,
			Text:            "Write a function 'flattenArray' that takes a nested array and returns a flat array along with its depth.",
			ReferenceAnswer: "Recursive or stack-based flattening that also tracks the maximum nesting depth.",
			Explanation:     "Requires recursion or stack-based flattening.",
			Points:          20,
			CodeTemplate:    "function flattenArray(arr) {\n    // Write your code here\n}",
		},
		{
			Skill:           "React",
			Type:            model.QuestionTypeCoding,
			Difficulty:      model.DifficultyIntermediate,
			Text:            "Implement a 'Counter' component with increment and reset buttons using the useState hook.",
			ReferenceAnswer: "Function component holding a number in useState; the increment button adds one, reset returns to zero, and the current count is rendered.",
			Explanation:     "Requires useState and event handlers.",
			Points:          20,
			CodeTemplate:    "function Counter() {\n    // Write your code here\n}",
		},
	}
	return qs
}
