package dom

import (
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockScheduler is a gomock mock of Scheduler, written in the shape mockgen
// produces.
type MockScheduler struct {
	ctrl     *gomock.Controller
	recorder *MockSchedulerMockRecorder
	isgomock struct{}
}

// MockSchedulerMockRecorder is the mock recorder for MockScheduler.
type MockSchedulerMockRecorder struct {
	mock *MockScheduler
}

// NewMockScheduler creates a new mock instance.
func NewMockScheduler(ctrl *gomock.Controller) *MockScheduler {
	mock := &MockScheduler{ctrl: ctrl}
	mock.recorder = &MockSchedulerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockScheduler) EXPECT() *MockSchedulerMockRecorder {
	return m.recorder
}

// AfterFunc mocks base method.
func (m *MockScheduler) AfterFunc(d time.Duration, f func()) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "AfterFunc", d, f)
}

// AfterFunc indicates an expected call of AfterFunc.
func (mr *MockSchedulerMockRecorder) AfterFunc(d, f any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AfterFunc", reflect.TypeOf((*MockScheduler)(nil).AfterFunc), d, f)
}
