package codegen

import (
	"fmt"
	"strings"

	"github.com/brslang/brsc/internal/target"
	"github.com/brslang/brsc/internal/token"
)

// arm64Templates implements templateSet for AArch64 assembly.
type arm64Templates struct{}

func (arm64Templates) CommentPrefix() string { return "//" }

func (arm64Templates) Header() string {
	return ".global _start\n\n_start:"
}

func (arm64Templates) PushImmediate(literal string) string {
	return fmt.Sprintf("        mov x0, #%s\n        str x0, [sp, #-8]!", literal)
}

func (arm64Templates) PushVar(byteOffset int) string {
	return fmt.Sprintf("        ldr x0, [sp, #%d]\n        str x0, [sp, #-8]!", byteOffset)
}

func (arm64Templates) BinOp(op token.OperatorKind, labelID int) string {
	switch op {
	case token.Plus:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        add x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Minus:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        sub x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Multiply:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        mul x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Divide:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        sdiv x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Modulo:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        sdiv x3, x1, x2\n        msub x0, x3, x2, x1\n        str x0, [sp, #-8]!"
	case token.Exponent:
		text := `        ldr x2, [sp], #8
        ldr x1, [sp], #8
        mov x0, #1
        cbz x2, exp_done#ID
exponential#ID:
        mul x0, x0, x1
        sub x2, x2, #1
        cbnz x2, exponential#ID
exp_done#ID:
        str x0, [sp, #-8]!`
		return strings.ReplaceAll(text, "#ID", fmt.Sprintf("%d", labelID))
	case token.And:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        and x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Or:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        orr x0, x1, x2\n        str x0, [sp, #-8]!"
	case token.Xor:
		return "        ldr x2, [sp], #8\n        ldr x1, [sp], #8\n        eor x0, x1, x2\n        str x0, [sp, #-8]!"
	default:
		return fmt.Sprintf("        // unsupported binary operator %s", op)
	}
}

func (arm64Templates) UnaryNot() string {
	return "        ldr x0, [sp], #8\n        cmp x0, #0\n        cset x0, eq\n        str x0, [sp, #-8]!"
}

func (arm64Templates) AdjustStack(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("        add sp, sp, #%d", n)
}

func (arm64Templates) ExitSequence(os target.OS) string {
	switch os {
	case target.MacOS:
		return "        ldr x0, [sp], #8\n        ldr x16, =0x2000001\n        svc #0x80"
	default: // Linux
		return "        ldr x0, [sp], #8\n        mov x8, #93\n        svc #0"
	}
}

func (arm64Templates) PrintSequence() string {
	return "        ldr x0, [sp], #8\n        bl int_to_string\n        bl print_string"
}

func (arm64Templates) Subroutines(os target.OS) string {
	writeSyscall := "mov x8, #64"
	writeFd := "mov x0, #1"
	svc := "svc #0"
	if os == target.MacOS {
		writeSyscall = "ldr x16, =0x2000004"
		svc = "svc #0x80"
	}
	return fmt.Sprintf(`int_to_string:
        // x0 holds the integer to render; leaves the buffer address
        // in x1 and its length in x2.
        adr x3, itoa_buf
        add x1, x3, #31
        mov w4, #0
        strb w4, [x1]
        mov x5, x0
        mov x6, #10
        mov x7, #0
        cmp x5, #0
        bge .itoa_convert
        neg x5, x5
        mov x7, #1
.itoa_convert:
        sub x1, x1, #1
        udiv x8, x5, x6
        msub x9, x8, x6, x5
        add x9, x9, #'0'
        strb w9, [x1]
        mov x5, x8
        cbnz x5, .itoa_convert
        cmp x7, #0
        beq .itoa_done
        sub x1, x1, #1
        mov w9, #'-'
        strb w9, [x1]
.itoa_done:
        add x2, x3, #32
        sub x2, x2, x1
        ret

print_string:
        // x1/x2 set by int_to_string.
        %s
        %s
        %s
        ret

.bss
itoa_buf: .skip 32
`, writeFd, writeSyscall, svc)
}
