// Package loader builds trees from declarative YAML documents. A document
// describes the tree shape (sequences, selectors, decorators) while leaves
// are resolved against a Registry of named Go functions or compiled from
// expr-lang expression strings:
//
//	root:
//	  selector:
//	    - sequence:
//	        - expr: "v >= 0 && v < 5"
//	        - action: small
//	    - action: fallback
//
// All structural problems — unknown leaf names, empty child lists, node
// specs that are ambiguous or empty — are rejected at load time; a loaded
// tree never fails for structural reasons at run time.
package loader
