package services

import (
	"sync"
)

// NotificationRecord captures the facts passed to the mock notifier
type NotificationRecord struct {
	OrderID       uint
	CustomerName  string
	CustomerPhone string
	PhoneModel    string
}

// MockNotifier is a mock implementation of NotifierInterface for testing
type MockNotifier struct {
	mu    sync.Mutex
	calls []NotificationRecord
}

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// SetAsMockForTesting sets this mock as the global notifier instance for testing
func (m *MockNotifier) SetAsMockForTesting() {
	SetNotifier(m)
}

// NotifyNewOrder records the notification instead of sending it
func (m *MockNotifier) NotifyNewOrder(orderID uint, customerName, customerPhone, phoneModel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, NotificationRecord{
		OrderID:       orderID,
		CustomerName:  customerName,
		CustomerPhone: customerPhone,
		PhoneModel:    phoneModel,
	})
}

// Calls returns a copy of the recorded notifications
func (m *MockNotifier) Calls() []NotificationRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]NotificationRecord, len(m.calls))
	copy(out, m.calls)
	return out
}

// Reset clears the recorded notifications
func (m *MockNotifier) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
