/*
Package domain contains the core domain models of the notation validation engine.

A notation is a workflow definition written as a Markdown document with YAML
frontmatter. The frontmatter declares two state machines (the client-facing
flow and the staff-facing alignment); the body is a template rendered later by
other systems. This package is kept pure and free of I/O, following the same
Hexagonal Architecture as the adapters that consume it.

# Key Entities

  - StateMachine: state name -> condition label -> target state.
  - QuestionReference: a question code embedded in a state identifier.
  - VariableReference: a {{ path | filter }} occurrence in the body.
  - ValidationResponse: the aggregated errors and warnings of one validation.
  - SchemaValidationResult: the outcome of one JSON field validation.
*/
package domain
