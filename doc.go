// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

/*
Package classdoc renders a single markdown document from a class reflection
model: namespaces, classes, traits, interfaces, exceptions, methods and
parameters.

The renderer consumes an already-built object graph and performs no I/O.
Output is deterministic: cross-reference anchors, method tables and a
numbered table of contents are generated the same way on every run.
Built-in templates are "readme" (title, table of contents, document) and
"reference" (document only); custom template text is also accepted.

Render from a YAML or JSON model file:

	md, err := classdoc.RenderFile("model.yaml", classdoc.Options{
		Title:       "Storage API",
		PrettyPrint: true,
	})
	if err != nil {
		return err
	}

	fmt.Println(md)

Build the model in code and use the renderer directly:

	project := &classdoc.Project{
		Namespaces: []string{`App`},
		Classes: []*classdoc.ClassLike{{
			Symbol:    classdoc.Symbol{Name: `App\Foo`},
			Namespace: "App",
		}},
	}

	r := classdoc.NewRenderer(classdoc.Options{})
	fmt.Print(classdoc.TOC(project.Tree(), 0))
	fmt.Print(r.Document(project.Namespaces, project.ClassMap()))

Custom templates receive Title, Tree, Namespaces, Classes and Unassigned and
may call the toc, render and anchor functions:

	md, err := classdoc.Render(project, classdoc.Options{
		TemplateText: "# {{ .Title }}\n\n{{ toc .Tree 0 }}\n{{ render .Namespaces .Classes }}",
	})

Generate a starter model to edit:

	data, err := classdoc.GenerateExample(classdoc.FormatYAML)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
*/
package classdoc
