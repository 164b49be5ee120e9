package feedback

import (
	"fmt"
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/linked-ring-to-line/internal/ringline"
)

const toastTitle = "Linked Ring To Line"

// notify shows a desktop notification. Overridden in tests.
var notify = func(text string) error {
	return zenity.Notify(text, zenity.Title(toastTitle), zenity.InfoIcon)
}

// Messages are 1-based, as shown to the user.
func CompleteMessage(index int) string { return fmt.Sprintf("animation %d is complete", index+1) }
func ResetMessage(index int) string    { return fmt.Sprintf("animation %d is reset", index+1) }

// Toast returns a listener that pops a desktop notification for every
// complete and reset event. Notifications are sent off the render loop;
// failures are logged and dropped.
func Toast() ringline.Listener {
	return ringline.Listener{
		OnComplete: func(i int) { showToast(CompleteMessage(i)) },
		OnReset:    func(i int) { showToast(ResetMessage(i)) },
	}
}

func showToast(msg string) {
	go func() {
		if err := notify(msg); err != nil {
			log.Printf("toast %q: %v", msg, err)
		}
	}()
}
