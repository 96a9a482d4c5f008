// Package convert turns a legacy step into a WISE 4 node descriptor and the
// files holding its content.
//
// A Selector maps every resolved step type to a Converter. Converters are
// stateless: the step counter is passed in by the caller and only used to
// name the produced files, so the caller decides when it advances. A
// converter that cannot find an expected element returns an error wrapping
// ErrMissingField and produces nothing.
//
// Step kinds that render an HTML page share one converter parameterized by
// where the markup comes from. Assessment kinds combine a qti.Parser with a
// builder for the shape they produce.
package convert
