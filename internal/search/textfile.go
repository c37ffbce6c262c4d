package search

// textSampleSize is how much of a file is inspected before searching it
const textSampleSize = 8192

// isText reports whether a file sample looks like text. Files with null
// bytes in their first 8KB are treated as binary.
func isText(sample []byte) bool {
	// UTF-16 and UTF-32 text carries null bytes, recognise it by its BOM
	if len(sample) >= 2 {
		if (sample[0] == 0xFF && sample[1] == 0xFE) || (sample[0] == 0xFE && sample[1] == 0xFF) {
			return true
		}
	}
	if len(sample) >= 4 && sample[0] == 0x00 && sample[1] == 0x00 && sample[2] == 0xFE && sample[3] == 0xFF {
		return true
	}

	for i := 0; i < len(sample); i++ {
		if sample[i] == 0 {
			return false
		}
	}

	return true
}
