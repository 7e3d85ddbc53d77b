package insight

import (
	"fmt"
	"strings"

	"familia/internal/models"
)

// Fixed replies returned instead of model output.
const (
	NoTransactionsMessage = "Adicione transações para receber uma análise financeira inteligente."
	EmptyResponseMessage  = "Não foi possível gerar insights no momento."
	UnavailableMessage    = "Ocorreu um erro ao tentar conectar com a inteligência artificial. Verifique sua conexão ou tente mais tarde."
)

const promptTemplate = `Atue como um consultor financeiro pessoal experiente.
Analise as seguintes transações financeiras do mês de %s e forneça um resumo executivo curto e direto (máximo 3 parágrafos).

Dados:
%s

Diretrizes:
1. Identifique a categoria de maior gasto.
2. Aponte se o usuário está gastando mais do que ganha (se houver dados de receita).
3. Dê uma dica prática e acionável para economizar no próximo mês baseada nos padrões de gasto identificados.
4. Use formatação Markdown (negrito, listas) para facilitar a leitura.
5. Seja encorajador mas realista.
`

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// SummaryLine renders one transaction for the prompt.
func SummaryLine(tx models.Transaction) string {
	return fmt.Sprintf("- %s: %s (%s) - R$ %s (%s)",
		tx.Date, tx.Description, tx.Category, tx.Amount.StringFixed(2), tx.Type.Label())
}

// BuildPrompt renders the advisor prompt for the given month label.
func BuildPrompt(txs []models.Transaction, month string) string {
	lines := make([]string, 0, len(txs))
	for _, tx := range txs {
		lines = append(lines, SummaryLine(tx))
	}
	return fmt.Sprintf(promptTemplate, month, strings.Join(lines, "\n"))
}

// MonthLabel turns "2024-03" into "março de 2024". Anything that is not a
// YYYY-MM month is returned unchanged.
func MonthLabel(month string) string {
	var year, m int
	if _, err := fmt.Sscanf(month, "%4d-%2d", &year, &m); err != nil || m < 1 || m > 12 || len(month) != 7 {
		return month
	}
	return fmt.Sprintf("%s de %d", monthNames[m-1], year)
}
