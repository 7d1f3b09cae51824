// Package render drives an effect chain offline: it processes frame
// buffers block by block under the same driver contract the real-time
// path uses, and produces deinterleaved float64 channel buffers ready
// for mixing or encoding.
package render
