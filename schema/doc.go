// Package schema reads JSON Schema documents into an ordered, read-only node
// tree and resolves $ref values between them.
//
// Documents may be written in JSON or YAML. Object keys keep their source
// order, which fixes the order of generated fields and methods.
//
// # Quick Start
//
//	store := schema.NewStore()
//	doc, err := store.Load("person.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	root := doc.Root()
//	for _, field := range root.Get("properties").Fields() {
//		fmt.Println(field.Key, field.Value.Get("type").Text())
//	}
//
// # References
//
// Store.Resolve understands local fragments ("#", "#/definitions/address"),
// relative and absolute file paths with an optional fragment, and file://
// URIs. Relative paths are resolved against the directory of the document
// that holds the $ref. Remote (http, https) references are not fetched.
// Store.Deref follows a chain of references and reports cycles.
//
// # OpenAPI
//
// Store.LoadOpenAPI loads an OpenAPI 3 document with kin-openapi and returns
// each entry of components.schemas as a Root, so the same rules generate one
// class per component.
//
// # Identity
//
// Node.ID combines the document URI with the node's JSON pointer. It is
// stable across $ref paths and is what the rules use to recognise a schema
// they have already turned into a class.
package schema
