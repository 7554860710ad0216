package profile

// jsFunctionShapes covers the surface forms shared by JavaScript and
// TypeScript: plain and async declarations, generators, methods, and
// arrow/function expressions bound through a declarator.
func jsFunctionShapes() []Shape {
	callable := []string{"arrow_function", "function_expression", "function"}
	return []Shape{
		{
			NodeType:  "function_declaration",
			Keyword:   "async",
			NameField: "name",
			NameTypes: []string{"identifier"},
			BodyField: "body",
			BodyTypes: []string{"statement_block"},
		},
		{
			NodeType:  "function_declaration",
			NameField: "name",
			NameTypes: []string{"identifier"},
			BodyField: "body",
			BodyTypes: []string{"statement_block"},
		},
		{
			NodeType:  "generator_function_declaration",
			NameField: "name",
			NameTypes: []string{"identifier"},
			BodyField: "body",
			BodyTypes: []string{"statement_block"},
		},
		{
			NodeType:  "method_definition",
			Keyword:   "async",
			NameField: "name",
			NameTypes: []string{"property_identifier"},
			BodyField: "body",
			BodyTypes: []string{"statement_block"},
		},
		{
			NodeType:  "method_definition",
			NameField: "name",
			NameTypes: []string{"property_identifier"},
			BodyField: "body",
			BodyTypes: []string{"statement_block"},
		},
		// const f = () => {}: the declaration keyword belongs to the
		// definition span, so the wrapper is required.
		{
			NodeType:   "variable_declarator",
			Wrapper:    "lexical_declaration",
			NameField:  "name",
			NameTypes:  []string{"identifier"},
			ValueField: "value",
			ValueTypes: callable,
			BodyField:  "body",
		},
		{
			NodeType:   "variable_declarator",
			Wrapper:    "variable_declaration",
			NameField:  "name",
			NameTypes:  []string{"identifier"},
			ValueField: "value",
			ValueTypes: callable,
			BodyField:  "body",
		},
	}
}

func init() {
	register(&Profile{
		Language: "javascript",
		Rules: []DefinitionRule{
			{Kind: KindFunction, Shapes: jsFunctionShapes()},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:  "class_declaration",
						NameField: "name",
						NameTypes: []string{"identifier"},
						BodyField: "body",
						BodyTypes: []string{"class_body"},
					},
				},
			},
		},
	})
}
