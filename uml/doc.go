// Package uml defines the normalized, tool-agnostic UML document produced
// by a fold. Its core purpose is to give downstream consumers one stable,
// strongly-typed view of a model regardless of which tool exported the
// source file.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Document: The root container for one parsed source file. It holds the
//     ordered list of root packages.
//
//   - Package: A recursive grouping of classes, enumerations, data types,
//     diagrams, and nested packages. Packages form a tree that mirrors the
//     containment structure of the source file.
//
//   - Class / DataType: The structural elements. Both carry attributes,
//     operations, constraints, and the resolved associations that link them
//     to other elements.
//
//   - Association: One resolved cross-reference between two elements,
//     expressed relative to the class it is attached to (owner end) with the
//     far side as the member end.
//
// Every record is created exactly once during a fold and never mutated
// afterwards. Slices preserve source document order so that two folds of
// the same input produce byte-identical encodings.
package uml
