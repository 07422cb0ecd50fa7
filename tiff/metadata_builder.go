package tiff

// BuildMetadata walks every entry of dir and assembles a validated
// Metadata. It widens Short/Long-typed dimension tags to uint32 and
// Short/Long/Ifd/BigLong/BigIfd-typed offset tables to uint64, the same
// relaxed dtype rule TIFF readers have always applied to these tags since
// encoders disagree about which integer width to emit them in.
func BuildMetadata(dir *Directory) (*Metadata, error) {
	entries := make(map[Tag]*Entry, dir.Len())
	it := dir.Entries()
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		entries[e.Tag()] = e
	}

	get := func(t Tag) (*Entry, bool) { e, ok := entries[t]; return e, ok }

	width, err := requireUint32(get, ImageWidth)
	if err != nil {
		return nil, err
	}
	height, err := requireUint32(get, ImageLength)
	if err != nil {
		return nil, err
	}

	samples, err := buildSamples(get)
	if err != nil {
		return nil, err
	}

	_, hasXRes := get(XResolution)
	_, hasYRes := get(YResolution)
	if hasXRes && !hasYRes {
		return nil, &MissingRequiredTagError{Tag: YResolution}
	}
	if hasYRes && !hasXRes {
		return nil, &MissingRequiredTagError{Tag: XResolution}
	}

	layout, err := buildLayout(get)
	if err != nil {
		return nil, err
	}

	offsetsTag, byteCountsTag := StripOffsets, StripByteCounts
	if layout.Kind == LayoutTiles {
		offsetsTag, byteCountsTag = TileOffsets, TileByteCounts
	}
	offsets, err := requireUint64Slice(get, offsetsTag)
	if err != nil {
		return nil, err
	}
	byteCounts, err := requireUint64Slice(get, byteCountsTag)
	if err != nil {
		return nil, err
	}
	if len(offsets) != len(byteCounts) {
		return nil, &ChunkCountMismatchError{Reason: "offsets and byte-counts tables differ in length"}
	}
	expected := layout.ExpectedChunksCount(width, height)
	if len(offsets) < expected {
		return nil, &ChunkCountMismatchError{Reason: "offsets table is shorter than the layout requires"}
	}

	chunks := make([]ChunkLoc, len(offsets))
	for i := range offsets {
		chunks[i] = ChunkLoc{Offset: offsets[i], ByteCount: byteCounts[i]}
	}

	compression := CompressionScheme(CompressionNone)
	if e, ok := get(Compression); ok {
		v, err := e.DecodeUint32()
		if err != nil {
			return nil, err
		}
		compression = CompressionScheme(v)
	}

	predictor := PredictorScheme(PredictorNone)
	if e, ok := get(Predictor); ok {
		v, err := e.DecodeUint32()
		if err != nil {
			return nil, err
		}
		predictor = PredictorScheme(v)
	}

	planar := PlanarConfigurationChunky
	if e, ok := get(PlanarConfiguration); ok {
		v, err := e.DecodeUint32()
		if err != nil {
			return nil, err
		}
		planar = PlanarConfiguration(v)
	}

	var photometric uint16
	if e, ok := get(PhotometricInterpretation); ok {
		var v uint16
		if err := e.Decode(&v); err != nil {
			return nil, err
		}
		photometric = v
	}

	var subfile SubfileType
	if e, ok := get(NewSubfileType); ok {
		v, err := e.DecodeUint32()
		if err != nil {
			return nil, err
		}
		subfile = SubfileType(v)
	}

	return &Metadata{
		Width: width, Height: height,
		Layout:              layout,
		Samples:             samples,
		PlanarConfiguration: planar,
		Compression:         compression,
		Predictor:           predictor,
		Photometric:         photometric,
		SubfileType:         subfile,
		chunks:              chunks,
		Entries:             entries,
	}, nil
}

func requireUint32(get func(Tag) (*Entry, bool), tag Tag) (uint32, error) {
	e, ok := get(tag)
	if !ok {
		return 0, &MissingRequiredTagError{Tag: tag}
	}
	return e.DecodeUint32()
}

func requireUint64Slice(get func(Tag) (*Entry, bool), tag Tag) ([]uint64, error) {
	e, ok := get(tag)
	if !ok {
		return nil, &MissingRequiredTagError{Tag: tag}
	}
	return e.DecodeUint64Slice()
}

func buildSamples(get func(Tag) (*Entry, bool)) ([]Sample, error) {
	spp := uint16(1)
	if e, ok := get(SamplesPerPixel); ok {
		var v uint16
		if err := e.Decode(&v); err != nil {
			return nil, err
		}
		spp = v
	}

	bits := make([]uint16, spp)
	if e, ok := get(BitsPerSample); ok {
		if int(e.Count()) == 1 {
			var v uint16
			if err := e.Decode(&v); err != nil {
				return nil, err
			}
			for i := range bits {
				bits[i] = v
			}
		} else {
			if err := e.Decode(&bits); err != nil {
				return nil, err
			}
		}
	} else {
		for i := range bits {
			bits[i] = 1
		}
	}

	formats := make([]SampleFormat, spp)
	for i := range formats {
		formats[i] = SampleFormatUnsignedInteger
	}
	if e, ok := get(SampleFormat); ok {
		n := int(spp)
		if e.Count() == 1 {
			n = 1
		}
		raw := make([]uint16, n)
		if err := e.Decode(&raw); err != nil {
			return nil, err
		}
		if len(raw) == 1 {
			for i := range formats {
				formats[i] = SampleFormat(raw[0])
			}
		} else {
			for i := range formats {
				if i < len(raw) {
					formats[i] = SampleFormat(raw[i])
				}
			}
		}
	}

	samples := make([]Sample, spp)
	for i := range samples {
		samples[i] = Sample{BitsPerSample: bits[i], Format: formats[i]}
	}
	return samples, nil
}

func buildLayout(get func(Tag) (*Entry, bool)) (Layout, error) {
	_, hasStripOffsets := get(StripOffsets)
	_, hasTileOffsets := get(TileOffsets)

	switch {
	case hasStripOffsets && hasTileOffsets:
		return Layout{}, &AmbiguousLayoutError{Reason: "directory has both StripOffsets and TileOffsets"}
	case hasTileOffsets:
		width, err := requireUint32(get, TileWidth)
		if err != nil {
			return Layout{}, err
		}
		length, err := requireUint32(get, TileLength)
		if err != nil {
			return Layout{}, err
		}
		return Layout{Kind: LayoutTiles, Width: width, Height: length}, nil
	case hasStripOffsets:
		imgWidth, err := requireUint32(get, ImageWidth)
		if err != nil {
			return Layout{}, err
		}
		// RowsPerStrip defaults to ImageLength: the whole image as one strip.
		rowsPerStrip, err := requireUint32(get, ImageLength)
		if err != nil {
			return Layout{}, err
		}
		if e, ok := get(RowsPerStrip); ok {
			rowsPerStrip, err = e.DecodeUint32()
			if err != nil {
				return Layout{}, err
			}
		}
		return Layout{Kind: LayoutStrips, Width: imgWidth, Height: rowsPerStrip}, nil
	default:
		return Layout{}, &AmbiguousLayoutError{Reason: "directory has neither StripOffsets nor TileOffsets"}
	}
}
