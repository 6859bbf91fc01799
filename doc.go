/*
Package canopy manages trees of lifetime-scoped contexts that double as
composable callback handlers.

A Context represents the scope at a point in time: it begins, may parent
child contexts, stores values resolvable by consumers, routes callbacks
either locally or along tree-traversal axes, and ends exactly once, taking
its whole subtree with it. Observers subscribe to end-of-life notifications
for a context or its children.

# Lifecycle

A context moves Active -> Ending -> Ended and never backward. Ending a
context notifies its observers, unwinds every child depth-first, and then
notifies again:

	root := canopy.New()
	session, _ := root.NewChild()
	request, _ := session.NewChild()

	unsubscribe, _ := session.Observe(myObserver)
	defer unsubscribe()

	session.End() // request ends first, then session

Ending an already-ending or ended context is a safe no-op, so Close (which
is exactly End) slots into the usual defer-based resource handling.

# Dispatch

A context is a callback handler. Handle tries the context's stored values
and local handlers, then chains to the parent unless the callback was
already handled non-greedily. Axis views redirect one dispatch across the
tree instead:

	// reach every handler in the session's subtree
	session.ToSelfOrDescendants().Handle(event, true, nil)

	// or, from anywhere inside the tree
	canopy.Publish(request, event)

Values placed with Store resolve through the same protocol, so a handler
deep in the tree can look up collaborators registered on an ancestor:

	session.Store(db)
	conn, ok := callback.Resolve[*sql.DB](request)

Collaborator packages: pkg/callback defines the handler protocol and value
resolution, pkg/traversal the axes and the tree walker, pkg/observe and
pkg/metrics ready-made lifecycle observers (slog and Prometheus).
*/
package canopy
