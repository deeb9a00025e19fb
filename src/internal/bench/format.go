// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"io"
	"strconv"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/protocol"
)

type flusher interface {
	Flush() error
}

// WriteResult writes the result line for res and flushes w when it buffers.
//
//	result: <token> <us_1> ... <us_n>
func WriteResult(w io.Writer, res Result) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	buf.WriteString(protocol.ResultPrefix)
	buf.WriteString(res.Outcome.String())
	for _, m := range res.Measurements {
		buf.WriteByte(' ')
		buf.WriteString(strconv.FormatInt(m.Microseconds(), 10))
	}
	buf.WriteByte('\n')

	if _, err := buf.WriteTo(w); err != nil {
		return err
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
