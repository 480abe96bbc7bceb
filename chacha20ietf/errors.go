package chacha20ietf

// APIMisuseError reports a violated call precondition, for example an
// invalid key length or an undersized output buffer. No output is written
// when one is returned.
type APIMisuseError string

func (e APIMisuseError) Error() string {
	return "chacha20ietf: api misuse: " + string(e)
}
