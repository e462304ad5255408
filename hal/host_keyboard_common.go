package hal

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit queues ev, dropping it when the queue is full.
func (k *hostKeyboard) emit(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

// typeRune queues a press of r as typed text. Tab and Escape become key codes.
func (k *hostKeyboard) typeRune(r rune) bool {
	switch r {
	case '\t':
		return k.emit(KeyEvent{Code: KeyTab, Press: true})
	case 0x1b:
		return k.emit(KeyEvent{Code: KeyEscape, Press: true})
	default:
		return k.emit(KeyEvent{Press: true, Rune: r})
	}
}
