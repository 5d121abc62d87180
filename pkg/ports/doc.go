/*
Package ports defines the driven ports (interfaces) of the notation validation engine.

These interfaces decouple the validation core from the systems that own questions
and notations, allowing the engine to work with in-memory, Redis or PostgreSQL
registries without knowing about any of them.

# Key Interfaces

  - QuestionRegistry: existence lookup of a question by code.
  - BatchQuestionRegistry: optional single round trip lookup of many codes.
  - NotationRegistry: count of notations already using a code.
  - Validatable: capability checked by a storage layer before committing a write.
*/
package ports
