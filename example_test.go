package canopy_test

import (
	"fmt"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/callback"
	"github.com/aretw0/canopy/pkg/observe"
)

// ExampleContext_End demonstrates the lifecycle: ending a context notifies
// its observers and unwinds its children first.
func ExampleContext_End() {
	root := canopy.New()
	session, _ := root.NewChild()
	session.MustNewChild()

	_, _ = session.Observe(&observe.Hooks{
		OnContextEnding:     func(*canopy.Context) { fmt.Println("session ending") },
		OnContextEnded:      func(*canopy.Context) { fmt.Println("session ended") },
		OnChildContextEnded: func(*canopy.Context) { fmt.Println("request ended") },
	})

	session.End()
	fmt.Println("state:", session.State())
	// Output:
	// session ending
	// request ended
	// session ended
	// state: ended
}

// ExampleContext_Store demonstrates value resolution through the parent
// chain: anything stored on an ancestor is reachable from every descendant.
func ExampleContext_Store() {
	type database struct{ dsn string }

	root := canopy.New()
	root.Store(&database{dsn: "postgres://localhost/app"})

	session, _ := root.NewChild()
	request, _ := session.NewChild()

	db, ok := callback.Resolve[*database](request)
	fmt.Println(ok, db.dsn)
	// Output:
	// true postgres://localhost/app
}

// ExamplePublishFromRoot demonstrates a tree-wide broadcast from a leaf.
func ExamplePublishFromRoot() {
	type notice struct{ text string }

	listen := func(name string) callback.Handler {
		return callback.HandlerFunc(func(cb any, greedy bool, composer callback.Handler) bool {
			n, ok := cb.(*notice)
			if !ok {
				return false
			}
			fmt.Printf("%s: %s\n", name, n.text)
			return true
		})
	}

	root := canopy.New()
	root.AddHandlers(listen("root"))
	session, _ := root.NewChild()
	session.AddHandlers(listen("session"))
	request, _ := session.NewChild()
	request.AddHandlers(listen("request"))

	canopy.PublishFromRoot(request, &notice{text: "shutting down"})
	// Output:
	// root: shutting down
	// session: shutting down
	// request: shutting down
}
