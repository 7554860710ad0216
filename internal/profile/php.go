package profile

var phpAttributes = []string{"attribute_list"}

func init() {
	register(&Profile{
		Language: "php",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType:       "function_definition",
						NameField:      "name",
						NameTypes:      []string{"name"},
						BodyField:      "body",
						BodyTypes:      []string{"compound_statement"},
						DecoratorStyle: DecoratorLeading,
						DecoratorTypes: phpAttributes,
					},
					{
						NodeType:       "method_declaration",
						NameField:      "name",
						NameTypes:      []string{"name"},
						BodyField:      "body",
						BodyTypes:      []string{"compound_statement"},
						DecoratorStyle: DecoratorLeading,
						DecoratorTypes: phpAttributes,
					},
				},
			},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:       "class_declaration",
						NameField:      "name",
						NameTypes:      []string{"name"},
						BodyField:      "body",
						BodyTypes:      []string{"declaration_list"},
						DecoratorStyle: DecoratorLeading,
						DecoratorTypes: phpAttributes,
					},
					{
						NodeType:  "interface_declaration",
						NameField: "name",
						NameTypes: []string{"name"},
						BodyField: "body",
						BodyTypes: []string{"declaration_list"},
					},
					{
						NodeType:  "trait_declaration",
						NameField: "name",
						NameTypes: []string{"name"},
						BodyField: "body",
						BodyTypes: []string{"declaration_list"},
					},
				},
			},
		},
	})
}
