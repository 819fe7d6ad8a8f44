package mocks

import (
	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// DialogsMock records every message it is asked to show.
type DialogsMock struct {
	SaveFileFunc func(opts runtime.SaveDialogOptions) (string, error)
	OpenFileFunc func(opts runtime.OpenDialogOptions) (string, error)
	ConfirmFunc  func(title, message string) (bool, error)

	Infos  []string
	Errors []string
	Asked  []string
}

func (m *DialogsMock) SaveFile(opts runtime.SaveDialogOptions) (string, error) {
	if m.SaveFileFunc != nil {
		return m.SaveFileFunc(opts)
	}
	return "", nil
}

func (m *DialogsMock) OpenFile(opts runtime.OpenDialogOptions) (string, error) {
	if m.OpenFileFunc != nil {
		return m.OpenFileFunc(opts)
	}
	return "", nil
}

func (m *DialogsMock) Confirm(title, message string) (bool, error) {
	m.Asked = append(m.Asked, message)
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(title, message)
	}
	return true, nil
}

func (m *DialogsMock) Info(title, message string) error {
	m.Infos = append(m.Infos, message)
	return nil
}

func (m *DialogsMock) Error(title, message string) error {
	m.Errors = append(m.Errors, message)
	return nil
}
