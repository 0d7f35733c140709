package chunkedbytes

type decoderState uint8

// Only states that survive between pulls are listed here. Everything inside
// a single line (extension, CRLF) is consumed within one pull, as the source
// blocks instead of running out of data.
const (
	eChunkLength decoderState = iota + 1
	eChunkBody
	eChunkBodyCRLF
	eDone
)
