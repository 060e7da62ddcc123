package bus

import (
	"fmt"
	"sync"

	"github.com/giantswarm/microerror"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"
)

const propertiesInterface = "org.freedesktop.DBus.Properties"

// DBusServer implements ObjectServer on a D-Bus connection.
type DBusServer struct {
	conn *dbus.Conn

	mu sync.Mutex
	// interfaces each path was exported under, needed to tear the
	// object down again
	ifaces map[string][]string
}

// NewSystemBus connects to the system bus and claims the given
// well-known name. Failing to become primary owner of the name is
// fatal: a second instance of the daemon must not run.
func NewSystemBus(name string) (*DBusServer, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, microerror.Mask(err)
	}

	reply, err := conn.RequestName(name, dbus.NameFlagDoNotQueue)
	if err != nil {
		conn.Close()
		return nil, microerror.Mask(err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		conn.Close()
		return nil, microerror.Mask(fmt.Errorf("bus name %s already taken", name))
	}

	return &DBusServer{
		conn:   conn,
		ifaces: map[string][]string{},
	}, nil
}

// ExportProperties publishes the object via the org.freedesktop.DBus
// properties protocol. All properties are read-only and emit
// PropertiesChanged on export.
func (d *DBusServer) ExportProperties(path, iface string, props Properties) error {
	propMap := prop.Map{iface: {}}
	for name, value := range props {
		propMap[iface][name] = &prop.Prop{
			Value:    value,
			Writable: false,
			Emit:     prop.EmitTrue,
		}
	}

	_, err := prop.Export(d.conn, dbus.ObjectPath(path), propMap)
	if err != nil {
		return microerror.Mask(err)
	}

	d.track(path, iface, propertiesInterface)
	return nil
}

// ExportMethod publishes a single-method object.
func (d *DBusServer) ExportMethod(path, iface, name string, handler func() error) error {
	table := map[string]interface{}{
		name: func() *dbus.Error {
			if err := handler(); err != nil {
				return dbus.MakeFailedError(err)
			}
			return nil
		},
	}

	err := d.conn.ExportMethodTable(table, dbus.ObjectPath(path), iface)
	if err != nil {
		return microerror.Mask(err)
	}

	d.track(path, iface)
	return nil
}

// Unexport removes every interface the path was exported under.
func (d *DBusServer) Unexport(path string) error {
	d.mu.Lock()
	ifaces := d.ifaces[path]
	delete(d.ifaces, path)
	d.mu.Unlock()

	for _, iface := range ifaces {
		err := d.conn.Export(nil, dbus.ObjectPath(path), iface)
		if err != nil {
			return microerror.Mask(err)
		}
	}
	return nil
}

// Close drops the bus connection, which also releases the well-known
// name.
func (d *DBusServer) Close() error {
	err := d.conn.Close()
	if err != nil {
		return microerror.Mask(err)
	}
	return nil
}

func (d *DBusServer) track(path string, ifaces ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, iface := range ifaces {
		found := false
		for _, existing := range d.ifaces[path] {
			if existing == iface {
				found = true
				break
			}
		}
		if !found {
			d.ifaces[path] = append(d.ifaces[path], iface)
		}
	}
}
