//go:build nopng

package bggen

// DefaultEncoder returns nil because this build was made without PNG support.
func DefaultEncoder() Encoder {
	return nil
}
