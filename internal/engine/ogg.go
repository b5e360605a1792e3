package engine

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/vorbis"
	"github.com/jj11hh/opus"
)

const (
	opusSampleRate = 48000
	opusMaxFrame   = 5760 // 120 ms at 48 kHz
	vorbisMaxBlock = 8192

	oggHeaderLen = 27
	oggFlagBOS   = 0x02
)

var (
	errOggCapture     = errors.New("ogg: invalid capture pattern")
	errOggVersion     = errors.New("ogg: unsupported version")
	errOggNoBOS       = errors.New("ogg: stream does not start with a beginning-of-stream page")
	errOggCodec       = errors.New("ogg: unknown codec (not Opus or Vorbis)")
	errOggChainFormat = errors.New("ogg: chained stream changes sample rate or channels")
	errOpusHead       = errors.New("opus: invalid identification header")
	errVorbisHeader   = errors.New("vorbis: invalid identification header")
)

// oggPacket is one reassembled packet. bos marks the first packet of a
// logical stream.
type oggPacket struct {
	data []byte
	bos  bool
}

// oggPackets reads Ogg pages in order from a non-seekable body and yields
// complete packets, joining those that span pages.
type oggPackets struct {
	r       io.Reader
	header  [oggHeaderLen]byte
	pending []oggPacket
	partial []byte
}

func (p *oggPackets) next() (oggPacket, error) {
	for len(p.pending) == 0 {
		if err := p.readPage(); err != nil {
			return oggPacket{}, err
		}
	}
	pkt := p.pending[0]
	p.pending = p.pending[1:]
	return pkt, nil
}

func (p *oggPackets) readPage() error {
	if _, err := io.ReadFull(p.r, p.header[:]); err != nil {
		return err
	}
	if string(p.header[0:4]) != "OggS" {
		return errOggCapture
	}
	if p.header[4] != 0 {
		return errOggVersion
	}
	// Checksum at header[22:26] is not verified

	segments := make([]byte, p.header[26])
	if _, err := io.ReadFull(p.r, segments); err != nil {
		return err
	}
	size := 0
	for _, s := range segments {
		size += int(s)
	}
	body := make([]byte, size)
	if _, err := io.ReadFull(p.r, body); err != nil {
		return err
	}

	bos := p.header[5]&oggFlagBOS != 0
	if bos {
		// A new logical stream never continues the previous one
		p.partial = nil
	}
	off := 0
	for _, s := range segments {
		p.partial = append(p.partial, body[off:off+int(s)]...)
		off += int(s)
		if s < 255 {
			p.pending = append(p.pending, oggPacket{data: p.partial, bos: bos})
			p.partial = nil
			bos = false
		}
	}
	return nil
}

// oggCodec decodes the packets of one logical stream.
type oggCodec interface {
	// header consumes a header packet after the identification one. It
	// returns true once audio packets may follow.
	header(packet []byte) (bool, error)
	// decode writes interleaved samples to pcm and returns the number of
	// samples per channel.
	decode(packet []byte, pcm []float32) (int, error)
	sampleRate() int
	channels() int
	preSkip() int
	maxFrame() int
}

// newOggCodec detects the codec from the identification packet.
func newOggCodec(ident []byte) (oggCodec, error) {
	switch {
	case len(ident) >= 8 && string(ident[:8]) == "OpusHead":
		return newOpusCodec(ident)
	case len(ident) >= 7 && ident[0] == 0x01 && string(ident[1:7]) == "vorbis":
		return newVorbisCodec(ident)
	default:
		return nil, errOggCodec
	}
}

type opusCodec struct {
	decoder *opus.Decoder
	nch     int
	skip    int
}

func newOpusCodec(ident []byte) (*opusCodec, error) {
	if len(ident) < 19 || ident[8] != 1 {
		return nil, errOpusHead
	}
	nch := int(ident[9])
	if nch < 1 || nch > 2 {
		// Multichannel Opus needs a mapping table decoder
		return nil, errOpusHead
	}
	decoder, err := opus.NewDecoder(opusSampleRate, nch)
	if err != nil {
		return nil, err
	}
	return &opusCodec{
		decoder: decoder,
		nch:     nch,
		skip:    int(binary.LittleEndian.Uint16(ident[10:12])),
	}, nil
}

// header skips the OpusTags packet, the only one after OpusHead.
func (c *opusCodec) header(_ []byte) (bool, error) {
	return true, nil
}

func (c *opusCodec) decode(packet []byte, pcm []float32) (int, error) {
	return c.decoder.DecodeFloat32(packet, pcm)
}

func (c *opusCodec) sampleRate() int { return opusSampleRate }
func (c *opusCodec) channels() int   { return c.nch }
func (c *opusCodec) preSkip() int    { return c.skip }
func (c *opusCodec) maxFrame() int   { return opusMaxFrame }

type vorbisCodec struct {
	decoder vorbis.Decoder
	nch     int
	rate    int
	headers int
}

func newVorbisCodec(ident []byte) (*vorbisCodec, error) {
	if len(ident) < 16 || binary.LittleEndian.Uint32(ident[7:11]) != 0 {
		return nil, errVorbisHeader
	}
	c := &vorbisCodec{
		nch:  int(ident[11]),
		rate: int(binary.LittleEndian.Uint32(ident[12:16])),
	}
	if c.nch < 1 || c.rate <= 0 {
		return nil, errVorbisHeader
	}
	if err := c.decoder.ReadHeader(ident); err != nil {
		return nil, err
	}
	c.headers = 1
	return c, nil
}

// header takes the comment then the setup packet.
func (c *vorbisCodec) header(packet []byte) (bool, error) {
	if err := c.decoder.ReadHeader(packet); err != nil {
		return false, err
	}
	c.headers++
	return c.headers >= 3, nil
}

func (c *vorbisCodec) decode(packet []byte, pcm []float32) (int, error) {
	samples, err := c.decoder.Decode(packet)
	if err != nil {
		return 0, err
	}
	n := copy(pcm, samples)
	return n / c.nch, nil
}

func (c *vorbisCodec) sampleRate() int { return c.rate }
func (c *vorbisCodec) channels() int   { return c.nch }
func (c *vorbisCodec) preSkip() int    { return 0 }
func (c *vorbisCodec) maxFrame() int   { return vorbisMaxBlock }

// readOggHeaders reads packets until the next logical stream is ready to
// decode. first is its identification packet.
func readOggHeaders(packets *oggPackets, first []byte) (oggCodec, error) {
	codec, err := newOggCodec(first)
	if err != nil {
		return nil, err
	}
	for {
		pkt, err := packets.next()
		if err != nil {
			return nil, err
		}
		done, err := codec.header(pkt.data)
		if err != nil {
			return nil, err
		}
		if done {
			return codec, nil
		}
	}
}

// decodeOgg decodes a live Ogg Vorbis or Ogg Opus stream. Chained streams,
// which servers use to change metadata, are followed as long as the format
// stays the same.
func decodeOgg(rc io.ReadCloser) (beep.StreamCloser, beep.Format, error) {
	packets := &oggPackets{r: rc}
	first, err := packets.next()
	if err != nil {
		return nil, beep.Format{}, err
	}
	if !first.bos {
		return nil, beep.Format{}, errOggNoBOS
	}
	codec, err := readOggHeaders(packets, first.data)
	if err != nil {
		return nil, beep.Format{}, err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(codec.sampleRate()),
		NumChannels: min(codec.channels(), 2),
		Precision:   2,
	}
	return newOggDecoder(packets, codec, rc), format, nil
}

// oggDecoder implements beep.StreamCloser for a live Ogg stream.
type oggDecoder struct {
	packets *oggPackets
	codec   oggCodec
	closer  io.Closer

	pcm  []float32 // decode buffer
	buf  []float32 // undelivered samples, a window of pcm
	skip int       // samples per channel still to drop
	err  error
}

func newOggDecoder(packets *oggPackets, codec oggCodec, closer io.Closer) *oggDecoder {
	return &oggDecoder{
		packets: packets,
		codec:   codec,
		closer:  closer,
		pcm:     make([]float32, codec.maxFrame()*codec.channels()),
		skip:    codec.preSkip(),
	}
}

func (d *oggDecoder) Stream(samples [][2]float64) (n int, ok bool) {
	if d.err != nil {
		return 0, false
	}
	nch := d.codec.channels()

	for n < len(samples) {
		if len(d.buf) >= nch {
			for n < len(samples) && len(d.buf) >= nch {
				left := d.buf[0]
				right := left
				if nch > 1 {
					right = d.buf[1]
				}
				samples[n] = [2]float64{float64(left), float64(right)}
				d.buf = d.buf[nch:]
				n++
			}
			continue
		}

		pkt, err := d.packets.next()
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
				d.err = err
			}
			return n, n > 0
		}
		if pkt.bos {
			if err := d.chain(pkt.data); err != nil {
				d.err = err
				return n, n > 0
			}
			nch = d.codec.channels()
			continue
		}

		frames, err := d.codec.decode(pkt.data, d.pcm)
		if err != nil {
			continue // skip corrupt packets, live streams recover on the next one
		}
		drop := min(d.skip, frames)
		d.skip -= drop
		d.buf = d.pcm[drop*nch : frames*nch]
	}
	return n, true
}

// chain switches to the next logical stream.
func (d *oggDecoder) chain(ident []byte) error {
	codec, err := readOggHeaders(d.packets, ident)
	if err != nil {
		return err
	}
	if codec.sampleRate() != d.codec.sampleRate() || codec.channels() != d.codec.channels() {
		return errOggChainFormat
	}
	d.codec = codec
	d.skip = codec.preSkip()
	if need := codec.maxFrame() * codec.channels(); len(d.pcm) < need {
		d.pcm = make([]float32, need)
	}
	d.buf = nil
	return nil
}

func (d *oggDecoder) Err() error { return d.err }

func (d *oggDecoder) Close() error {
	return d.closer.Close()
}
