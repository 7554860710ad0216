package profile

var (
	javaComments    = []string{"comment", "line_comment", "block_comment"}
	javaAnnotations = []string{"marker_annotation", "annotation"}
)

func javaTypeShape(nodeType, bodyType string) Shape {
	return Shape{
		NodeType:           nodeType,
		NameField:          "name",
		NameTypes:          []string{"identifier"},
		BodyField:          "body",
		BodyTypes:          []string{bodyType},
		DecoratorStyle:     DecoratorContained,
		DecoratorTypes:     javaAnnotations,
		DecoratorContainer: "modifiers",
		LeadingComments:    javaComments,
	}
}

func init() {
	register(&Profile{
		Language: "java",
		Rules: []DefinitionRule{
			{
				Kind: KindFunction,
				Shapes: []Shape{
					{
						NodeType:           "method_declaration",
						NameField:          "name",
						NameTypes:          []string{"identifier"},
						BodyField:          "body",
						BodyTypes:          []string{"block"},
						DecoratorStyle:     DecoratorContained,
						DecoratorTypes:     javaAnnotations,
						DecoratorContainer: "modifiers",
						LeadingComments:    javaComments,
					},
					{
						NodeType:           "constructor_declaration",
						NameField:          "name",
						NameTypes:          []string{"identifier"},
						BodyField:          "body",
						BodyTypes:          []string{"constructor_body"},
						DecoratorStyle:     DecoratorContained,
						DecoratorTypes:     javaAnnotations,
						DecoratorContainer: "modifiers",
						LeadingComments:    javaComments,
					},
				},
			},
			{
				Kind: KindClass,
				Shapes: []Shape{
					javaTypeShape("class_declaration", "class_body"),
					javaTypeShape("interface_declaration", "interface_body"),
					javaTypeShape("enum_declaration", "enum_body"),
				},
			},
		},
	})
}
