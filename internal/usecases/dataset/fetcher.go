package dataset

import (
	"context"

	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SourceFetcher busca o texto bruto de uma fonte remota. A obtenção do texto
// é a única fronteira assíncrona do fluxo; o contrato do dataset começa
// quando o texto está disponível.
type SourceFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

type httpFetcher struct{}

// NewHTTPFetcher cria o fetcher HTTP padrão
func NewHTTPFetcher() SourceFetcher {
	return &httpFetcher{}
}

func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return utils.MakeRequest(ctx, url)
}
