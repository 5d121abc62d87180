package notation_test

import (
	"context"
	"fmt"
	"log"

	"github.com/neon-law-foundation/notation"
	"github.com/neon-law-foundation/notation/pkg/adapters/memory"
	"github.com/neon-law-foundation/notation/pkg/domain"
)

// ExampleEngine_Validate validates a notation against in-memory registries.
func ExampleEngine_Validate() {
	doc := `---
code: retainer
title: Retainer Agreement
description: Engagement terms
flow:
  BEGIN:
    _: ask__client_name
  ask__client_name:
    _: END
alignment:
  BEGIN:
    _: review__approve
  review__approve:
    Approve: END
    Reject: ERROR
---
Dear {{ person.name }},
`
	engine := notation.New(
		notation.WithQuestionRegistry(memory.NewQuestionRegistry("client_name")),
		notation.WithNotationRegistry(memory.NewNotationRegistry()),
	)

	res, err := engine.Validate(context.Background(), doc)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("valid:", res.Valid)
	for _, e := range res.Errors {
		fmt.Printf("%s (%s) line %d\n", e.Type, e.Field, e.Line)
	}
	// Output:
	// valid: false
	// missing_question (alignment) line 10
}

// ExampleEngine_Graph renders the flow machine as Mermaid.
func ExampleEngine_Graph() {
	doc := `---
code: intake
title: Intake
description: New client intake
flow:
  BEGIN:
    _: END
alignment:
  BEGIN:
    _: END
---
`
	chart, err := notation.New().Graph(doc, domain.MachineFlow)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(chart)
}
