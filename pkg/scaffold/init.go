package scaffold

import (
	"errors"
	"reflect"

	"github.com/mesh-intelligence/scaffold/pkg/defaults"
	"github.com/mesh-intelligence/scaffold/pkg/types"
)

// ErrNotStructPointer is returned by Init when the value is not a
// non-nil pointer to a struct.
var ErrNotStructPointer = errors.New("value must be a non-nil pointer to a struct")

// Init completes the construction of an entity composed of the embedded
// types.Entity base and capability containers. Every scaffolded field
// still at its zero value receives its catalog default; fields the
// caller's constructor already set keep their values, so a caller-supplied
// id or timestamp always wins. Call it last in a constructor:
//
//	func NewPerson(name string) *Person {
//		p := &Person{Name: name}
//		scaffold.MustInit(p)
//		return p
//	}
func Init(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	now := defaults.Now()
	sv := rv.Elem()
	for i := 0; i < sv.NumField(); i++ {
		field := sv.Field(i)
		if !field.CanSet() {
			continue
		}
		switch field.Type() {
		case reflect.TypeOf(types.Entity{}):
			initEntity(field.Addr().Interface().(*types.Entity), now)
		case reflect.TypeOf(types.Addresses{}):
			initContainer(field, types.Addresses{})
		case reflect.TypeOf(types.EmailAddresses{}):
			initContainer(field, types.EmailAddresses{})
		case reflect.TypeOf(types.Metadata{}):
			initContainer(field, types.Metadata{})
		case reflect.TypeOf(types.Notes{}):
			initContainer(field, types.Notes{})
		case reflect.TypeOf(types.PhoneNumbers{}):
			initContainer(field, types.PhoneNumbers{})
		case reflect.TypeOf(types.Tags{}):
			initContainer(field, types.Tags{})
		}
	}
	return nil
}

// MustInit is like Init but panics on error. For constructors where the
// target is statically known to be a struct pointer.
func MustInit(v any) {
	if err := Init(v); err != nil {
		panic(err)
	}
}

// initEntity fills the zero-valued lifecycle fields with their catalog
// defaults, leaving caller-set values untouched.
func initEntity(e *types.Entity, now int64) {
	if e.ID == "" {
		e.ID = defaults.NewID()
	}
	if e.CreatedDTM == 0 {
		e.CreatedDTM = now
	}
	if e.ModifiedDTM == 0 {
		e.ModifiedDTM = now
	}
	if e.InactiveDTM == 0 {
		e.InactiveDTM = defaults.AddDays(now, 90)
	}
	if e.ExpiredDTM == 0 {
		e.ExpiredDTM = defaults.AddYears(now, 3)
	}
	if e.Activity == nil {
		e.Activity = []types.ActivityItem{}
	}
}

// initContainer replaces a nil capability container with an empty one.
func initContainer(field reflect.Value, empty any) {
	if field.IsNil() {
		field.Set(reflect.ValueOf(empty))
	}
}
