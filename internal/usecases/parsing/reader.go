package parsing

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ParseReader executa o mesmo parse sobre uma fonte opaca de bytes (arquivo,
// corpo HTTP). O contexto cobre apenas a leitura; o parse em si é síncrono.
func (s *Service) ParseReader(ctx context.Context, r io.Reader) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, errors.Wrap(err, "erro ao ler a fonte de dados")
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return s.Parse(string(data)), nil
}

// ReaderResult acompanha o resultado assíncrono de ParseReaderAsync.
type ReaderResult struct {
	Result Result
	Err    error
}

// ParseReaderAsync dispara ParseReader em uma goroutine e entrega exatamente
// um resultado no canal retornado.
func (s *Service) ParseReaderAsync(ctx context.Context, r io.Reader) <-chan ReaderResult {
	out := make(chan ReaderResult, 1)

	go func() {
		defer close(out)
		result, err := s.ParseReader(ctx, r)
		out <- ReaderResult{Result: result, Err: err}
	}()

	return out
}
