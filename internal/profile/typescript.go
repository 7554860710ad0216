package profile

func init() {
	register(&Profile{
		Language: "typescript",
		Rules: []DefinitionRule{
			{Kind: KindFunction, Shapes: jsFunctionShapes()},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:  "class_declaration",
						NameField: "name",
						NameTypes: []string{"type_identifier", "identifier"},
						BodyField: "body",
						BodyTypes: []string{"class_body"},
					},
					{
						NodeType:  "abstract_class_declaration",
						NameField: "name",
						NameTypes: []string{"type_identifier", "identifier"},
						BodyField: "body",
						BodyTypes: []string{"class_body"},
					},
					{
						NodeType:  "interface_declaration",
						NameField: "name",
						NameTypes: []string{"type_identifier", "identifier"},
						BodyField: "body",
						BodyTypes: []string{"object_type", "interface_body"},
					},
				},
			},
		},
	})
}
