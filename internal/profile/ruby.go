package profile

func init() {
	register(&Profile{
		Language: "ruby",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType:        "method",
						NameField:       "name",
						NameTypes:       []string{"identifier", "operator", "setter"},
						BodyTypes:       []string{"body_statement"},
						BodyOptional:    true,
						BodyUndelimited: true,
					},
					// def self.foo
					{
						NodeType:        "singleton_method",
						NameField:       "name",
						NameTypes:       []string{"identifier", "operator", "setter"},
						BodyTypes:       []string{"body_statement"},
						BodyOptional:    true,
						BodyUndelimited: true,
					},
				},
			},
			{
				Kind: KindClass,
				Shapes: []Shape{
					{
						NodeType:        "class",
						NameField:       "name",
						NameTypes:       []string{"constant", "scope_resolution"},
						BodyTypes:       []string{"body_statement"},
						BodyOptional:    true,
						BodyUndelimited: true,
					},
					{
						NodeType:        "module",
						NameField:       "name",
						NameTypes:       []string{"constant", "scope_resolution"},
						BodyTypes:       []string{"body_statement"},
						BodyOptional:    true,
						BodyUndelimited: true,
					},
				},
			},
		},
	})
}
