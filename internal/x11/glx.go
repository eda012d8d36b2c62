package x11

// glxConfig is the part of a GLX visual config the mode list needs.
type glxConfig struct {
	rgba bool
}

// Each GLX visual config starts with visual id, class and rgba, followed
// by the remaining fixed properties and tag/value pairs.
const glxFixedProperties = 3

func parseVisualConfigs(numVisuals, numProperties uint32, props []uint32) map[uint32]glxConfig {
	configs := make(map[uint32]glxConfig, numVisuals)
	if numProperties < glxFixedProperties {
		return configs
	}

	n := int(numProperties)
	for i := 0; i < int(numVisuals); i++ {
		off := i * n
		if off+n > len(props) {
			break
		}
		configs[props[off]] = glxConfig{rgba: props[off+2] != 0}
	}
	return configs
}
