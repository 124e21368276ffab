package localai

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	tiktoken_loader "github.com/pkoukk/tiktoken-go-loader"
)

// promptEncoding approximates what OpenAI-compatible servers bill against.
const promptEncoding = "cl100k_base"

// countPromptTokens is swapped in tests.
var countPromptTokens = newPromptCounter().count

// promptCounter counts prompt tokens for debug logs. The BPE ranks come from
// the embedded offline loader, so counting never touches the network and the
// only outbound request of an Ask stays the chat completion.
type promptCounter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

func newPromptCounter() *promptCounter {
	return &promptCounter{}
}

func (p *promptCounter) count(prompt string) int {
	p.once.Do(func() {
		tiktoken.SetBpeLoader(tiktoken_loader.NewOfflineLoader())
		if enc, err := tiktoken.GetEncoding(promptEncoding); err == nil {
			p.enc = enc
		}
	})
	if p.enc == nil {
		// roughly four characters per token for English text
		return len(prompt) / 4
	}
	return len(p.enc.Encode(prompt, nil, nil))
}
