// Package bus abstracts the D-Bus object server so the inventory
// lifecycle can be driven and asserted against an in-memory fake in
// tests. The real implementation sits on the system bus.
package bus

// Properties holds the read-only string properties of one exported
// object, keyed by property name.
type Properties map[string]string

// ObjectServer exports and removes objects on a management bus. The
// daemon holds exactly one implementation for its whole lifetime,
// constructed at startup and closed at shutdown.
type ObjectServer interface {
	// ExportProperties publishes an object at path exposing the given
	// read-only properties on iface. Exporting to a path that is
	// already occupied replaces the object.
	ExportProperties(path, iface string, props Properties) error

	// ExportMethod publishes an object at path exposing a single
	// no-argument method on iface. Handler errors are surfaced to the
	// bus caller as a method failure.
	ExportMethod(path, iface, name string, handler func() error) error

	// Unexport removes the object at path, if any, together with all
	// interfaces it was exported under.
	Unexport(path string) error

	// Close releases the bus connection.
	Close() error
}
