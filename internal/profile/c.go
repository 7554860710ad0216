package profile

var cComments = []string{"comment"}

func init() {
	register(&Profile{
		Language: "c",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					// The identifier is nested inside the declarator
					// (possibly behind pointer declarators), so the name
					// capture descends from the declarator field.
					{
						NodeType:        "function_definition",
						NameField:       "declarator",
						NameTypes:       []string{"identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"compound_statement"},
						LeadingComments: cComments,
					},
				},
			},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:        "struct_specifier",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"field_declaration_list"},
						LeadingComments: cComments,
					},
					{
						NodeType:        "union_specifier",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"field_declaration_list"},
						LeadingComments: cComments,
					},
					{
						NodeType:        "enum_specifier",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"enumerator_list"},
						LeadingComments: cComments,
					},
				},
			},
		},
	})
}
