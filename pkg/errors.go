// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Sabit error değişkenleri sayesinde karşılaştırma string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Service katmanı bunları (genelde fmt.Errorf("%w: ...") ile wrap ederek) döner,
// handler katmanı pkg.Error ile HTTP status code'larına map'ler.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// ValidationError, kullanıcıya aynen gösterilecek bir detay mesajı taşıyan
// bad request hatasıdır.
//
// Wrap pattern'inden ("bad request: ...") farklı olarak Error() sadece Detail döner —
// client "Server with id 42 not found" gibi mesajları birebir karşılaştırabilir.
// errors.Is(err, ErrBadRequest) true döner, böylece status mapping değişmez.
type ValidationError struct {
	Detail string
}

// NewValidationError, constructor.
func NewValidationError(detail string) *ValidationError {
	return &ValidationError{Detail: detail}
}

func (e *ValidationError) Error() string {
	return e.Detail
}

// Unwrap, ValidationError'ı ErrBadRequest zincirine bağlar.
func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}
