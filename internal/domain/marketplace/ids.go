package marketplace

import gonanoid "github.com/jaevor/go-nanoid"

// Los ids de entidad llevan prefijo por colección + nanoid corto
// (owner-a1B2c3), formato heredado del dataset existente.
var newNanoid = mustNanoid(6)

func mustNanoid(length int) func() string {
	gen, err := gonanoid.Standard(length)
	if err != nil {
		panic(err)
	}
	return gen
}

func newPrefixedID(prefix string) string {
	return prefix + "-" + newNanoid()
}
