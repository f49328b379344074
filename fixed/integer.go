package fixed

// Plain scalars that can be used wherever a fixed-point type is expected by
// the generic vector and matrix code.

type Int32 int32

func (x Int32) Mul(y Int32) Int32 { return x * y }
func (x Int32) Div(y Int32) Int32 { return x / y }
func (x Int32) One() Int32        { return 1 }

type Float32 float32

func (x Float32) Mul(y Float32) Float32 { return x * y }
func (x Float32) Div(y Float32) Float32 { return x / y }
func (x Float32) One() Float32          { return 1 }
