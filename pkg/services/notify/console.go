package notify

import (
	"context"
	"fmt"
	"io"

	"github.com/de-tools/cost-notifier/pkg/models/domain"
)

// ConsoleNotifier writes the message to a writer instead of posting it,
// used for dry runs.
type ConsoleNotifier struct {
	out io.Writer
}

func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{out: out}
}

func (n *ConsoleNotifier) Send(_ context.Context, msg domain.NotificationMessage) error {
	_, err := fmt.Fprintf(n.out, "%s\n%s\n", msg.Header, msg.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSend, err)
	}
	return nil
}
