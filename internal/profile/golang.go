package profile

var goComments = []string{"comment"}

func init() {
	register(&Profile{
		Language: "go",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType:        "function_declaration",
						NameField:       "name",
						NameTypes:       []string{"identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"block"},
						LeadingComments: goComments,
					},
					{
						NodeType:        "method_declaration",
						NameField:       "name",
						NameTypes:       []string{"field_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"block"},
						LeadingComments: goComments,
					},
					// Anonymous form.
					{
						NodeType:  "func_literal",
						BodyField: "body",
						BodyTypes: []string{"block"},
					},
				},
			},
			{
				// Go has no classes; struct and interface types fill the
				// class role so qualified lookups still work.
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:        "type_spec",
						Wrapper:         "type_declaration",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "type",
						BodyTypes:       []string{"struct_type", "interface_type"},
						LeadingComments: goComments,
					},
				},
			},
		},
	})
}
