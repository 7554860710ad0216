package profile

func init() {
	register(&Profile{
		Language: "cpp",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType: "function_definition",
						// Free functions, methods, qualified out-of-class
						// definitions, destructors, and operators all hang
						// off the declarator.
						NameField: "declarator",
						NameTypes: []string{
							"identifier", "field_identifier", "qualified_identifier",
							"destructor_name", "operator_name",
						},
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
						NodeType:        "class_specifier",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"field_declaration_list"},
						LeadingComments: cComments,
					},
					{
						NodeType:        "struct_specifier",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"field_declaration_list"},
						LeadingComments: cComments,
					},
				},
			},
		},
	})
}
