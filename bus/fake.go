package bus

import (
	"fmt"
	"sync"
)

// FakeObject is one object exported on a FakeObjectServer.
type FakeObject struct {
	Interface string
	Props     Properties
	Methods   map[string]func() error
}

// FakeObjectServer is an in-memory ObjectServer for tests. Besides the
// current object registry it records every export and unexport in
// order, so tests can assert the replace protocol (old object removed,
// new object exported, never two at once).
type FakeObjectServer struct {
	mu      sync.Mutex
	objects map[string]*FakeObject

	// Events holds "export <path>" and "unexport <path>" entries in
	// the order they happened.
	Events []string

	closed bool
}

// NewFakeObjectServer creates an empty FakeObjectServer.
func NewFakeObjectServer() *FakeObjectServer {
	return &FakeObjectServer{
		objects: map[string]*FakeObject{},
	}
}

// ExportProperties registers a property object at path.
func (f *FakeObjectServer) ExportProperties(path, iface string, props Properties) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := Properties{}
	for k, v := range props {
		copied[k] = v
	}

	f.objects[path] = &FakeObject{Interface: iface, Props: copied}
	f.Events = append(f.Events, "export "+path)
	return nil
}

// ExportMethod registers a method object at path.
func (f *FakeObjectServer) ExportMethod(path, iface, name string, handler func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.objects[path] = &FakeObject{
		Interface: iface,
		Methods:   map[string]func() error{name: handler},
	}
	f.Events = append(f.Events, "export "+path)
	return nil
}

// Unexport removes the object at path. Removing an absent path is not
// an error, matching the real bus behavior of unexporting nil.
func (f *FakeObjectServer) Unexport(path string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.objects, path)
	f.Events = append(f.Events, "unexport "+path)
	return nil
}

// Close marks the server closed.
func (f *FakeObjectServer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	return nil
}

// Object returns the object exported at path.
func (f *FakeObjectServer) Object(path string) (*FakeObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	o, ok := f.objects[path]
	return o, ok
}

// ObjectCount returns the number of currently exported objects.
func (f *FakeObjectServer) ObjectCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}

// Call invokes a method on the object exported at path, the way a bus
// peer would.
func (f *FakeObjectServer) Call(path, name string) error {
	f.mu.Lock()
	o, ok := f.objects[path]
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("no object exported at %s", path)
	}
	handler, ok := o.Methods[name]
	if !ok {
		return fmt.Errorf("object %s has no method %s", path, name)
	}

	return handler()
}
