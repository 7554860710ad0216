package profile

// pyDocstring matches the conventional first-statement string literal of a
// function or class body.
var pyDocstring = &DocstringRule{
	WrapperType: "expression_statement",
	StringTypes: []string{"string", "concatenated_string"},
}

func init() {
	register(&Profile{
		Language:        "python",
		IndentSensitive: true,
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					// Decorated definitions come first so the decorator
					// captures are not lost to the bare shape.
					{
						NodeType:       "function_definition",
						Wrapper:        "decorated_definition",
						NameField:      "name",
						NameTypes:      []string{"identifier"},
						BodyField:      "body",
						BodyTypes:      []string{"block"},
						DecoratorStyle: DecoratorWrapper,
						DecoratorTypes: []string{"decorator"},
						Docstring:      pyDocstring,
					},
					{
						NodeType:  "function_definition",
						Keyword:   "async",
						NameField: "name",
						NameTypes: []string{"identifier"},
						BodyField: "body",
						BodyTypes: []string{"block"},
						Docstring: pyDocstring,
					},
					{
						NodeType:  "function_definition",
						NameField: "name",
						NameTypes: []string{"identifier"},
						BodyField: "body",
						BodyTypes: []string{"block"},
						Docstring: pyDocstring,
					},
					// Anonymous form.
					{
						NodeType:  "lambda",
						BodyField: "body",
					},
				},
			},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:       "class_definition",
						Wrapper:        "decorated_definition",
						NameField:      "name",
						NameTypes:      []string{"identifier"},
						BodyField:      "body",
						BodyTypes:      []string{"block"},
						DecoratorStyle: DecoratorWrapper,
						DecoratorTypes: []string{"decorator"},
						Docstring:      pyDocstring,
					},
					{
						NodeType:  "class_definition",
						NameField: "name",
						NameTypes: []string{"identifier"},
						BodyField: "body",
						BodyTypes: []string{"block"},
						Docstring: pyDocstring,
					},
				},
			},
		},
	})
}
