package profile

var (
	rustComments   = []string{"line_comment", "block_comment"}
	rustAttributes = []string{"attribute_item"}
)

func init() {
	register(&Profile{
		Language: "rust",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType:        "function_item",
						Keyword:         "async",
						NameField:       "name",
						NameTypes:       []string{"identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"block"},
						DecoratorStyle:  DecoratorLeading,
						DecoratorTypes:  rustAttributes,
						LeadingComments: rustComments,
					},
					{
						NodeType:        "function_item",
						NameField:       "name",
						NameTypes:       []string{"identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"block"},
						DecoratorStyle:  DecoratorLeading,
						DecoratorTypes:  rustAttributes,
						LeadingComments: rustComments,
					},
				},
			},
			{
				// Structs, enums, and traits are the class-shaped items;
				// impl blocks are matched too so methods inside them get
				// an enclosing-class reference named after the type.
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:        "struct_item",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"field_declaration_list", "ordered_field_declaration_list"},
						DecoratorStyle:  DecoratorLeading,
						DecoratorTypes:  rustAttributes,
						LeadingComments: rustComments,
					},
					{
						NodeType:        "enum_item",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"enum_variant_list"},
						DecoratorStyle:  DecoratorLeading,
						DecoratorTypes:  rustAttributes,
						LeadingComments: rustComments,
					},
					{
						NodeType:        "trait_item",
						NameField:       "name",
						NameTypes:       []string{"type_identifier"},
						BodyField:       "body",
						BodyTypes:       []string{"declaration_list"},
						LeadingComments: rustComments,
					},
					{
						NodeType:  "impl_item",
						NameField: "type",
						NameTypes: []string{"type_identifier", "generic_type", "scoped_type_identifier"},
						BodyField: "body",
						BodyTypes: []string{"declaration_list"},
					},
				},
			},
		},
	})
}
