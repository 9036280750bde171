package datapath

// Sanitizers rewrite the values a path resolves to. They are built on
// Update, so wildcards and placeholders work as in Get and misses are
// skipped. Each returns the number of values rewritten.

// Mask replaces every string at path with its masked form.
func Mask(target *any, path any, separator string, mt MaskType) (int, error) {
	m, ok := MaskerFor(mt)
	if !ok {
		return 0, newConfigError(ErrMissingMasker, string(mt))
	}
	p := pathString(path, separator)
	return Update(target, path, separator, func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, newTransformError(ErrMask, "mask", p, ErrNotString)
		}
		return m.Mask(s), nil
	})
}

// Hash replaces every string at path with its hash under algo.
func Hash(target *any, path any, separator string, algo HashAlgo) (int, error) {
	h, ok := HasherFor(algo)
	if !ok {
		return 0, newConfigError(ErrMissingHasher, string(algo))
	}
	p := pathString(path, separator)
	return Update(target, path, separator, func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, newTransformError(ErrHash, "hash", p, ErrNotString)
		}
		sum, err := h.Hash([]byte(s))
		if err != nil {
			return nil, newTransformError(ErrHash, "hash", p, err)
		}
		return sum, nil
	})
}

// Redact replaces every value at path, whatever its type, with replacement.
func Redact(target *any, path any, separator string, replacement string) (int, error) {
	return Update(target, path, separator, func(any) (any, error) {
		return replacement, nil
	})
}
