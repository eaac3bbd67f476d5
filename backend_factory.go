// backend_factory.go - Dispatches a backend name to its constructor.
// Platform-specific constructors (newALSABackend, newPulseBackend,
// newPipewireBackend, newOtoBackend) are build-tag-gated and return nil
// when the backend isn't available on the current platform/build.

package main

func newBackendByName(name string) Backend {
	switch name {
	case "oto":
		return newOtoBackend()
	case "alsa":
		return newALSABackend()
	case "pulse":
		return newPulseBackend()
	case "pipewire":
		return newPipewireBackend()
	default:
		return nil
	}
}
