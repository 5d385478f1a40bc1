package codegen

import (
	"fmt"
	"strings"

	"github.com/brslang/brsc/internal/target"
	"github.com/brslang/brsc/internal/token"
)

// x86Templates implements templateSet for x86-64/NASM syntax.
type x86Templates struct{}

func (x86Templates) CommentPrefix() string { return ";" }

func (x86Templates) Header() string {
	return "global _start\n\n_start:"
}

func (x86Templates) PushImmediate(literal string) string {
	return fmt.Sprintf("        mov rax, %s\n        push rax", literal)
}

func (x86Templates) PushVar(byteOffset int) string {
	return fmt.Sprintf("        mov rax, [rsp+%d]\n        push rax", byteOffset)
}

func (x86Templates) BinOp(op token.OperatorKind, labelID int) string {
	switch op {
	case token.Plus:
		return "        pop rbx\n        pop rax\n        add rax, rbx\n        push rax"
	case token.Minus:
		return "        pop rbx\n        pop rax\n        sub rax, rbx\n        push rax"
	case token.Multiply:
		return "        pop rbx\n        pop rax\n        mul rbx\n        push rax"
	case token.Divide:
		return "        pop rbx\n        pop rax\n        xor rdx, rdx\n        div rbx\n        push rax"
	case token.Modulo:
		return "        pop rbx\n        pop rax\n        xor rdx, rdx\n        div rbx\n        push rdx"
	case token.Exponent:
		text := `        pop rbx
        pop rax
        mov rcx, rax
        mov rax, 1
        cmp rbx, 0
        je exp_done#ID
exponential#ID:
        imul rax, rcx
        dec rbx
        jnz exponential#ID
exp_done#ID:
        push rax`
		return strings.ReplaceAll(text, "#ID", fmt.Sprintf("%d", labelID))
	case token.And:
		return "        pop rbx\n        pop rax\n        and rax, rbx\n        push rax"
	case token.Or:
		return "        pop rbx\n        pop rax\n        or rax, rbx\n        push rax"
	case token.Xor:
		return "        pop rbx\n        pop rax\n        xor rax, rbx\n        push rax"
	default:
		return fmt.Sprintf("        ; unsupported binary operator %s", op)
	}
}

func (x86Templates) UnaryNot() string {
	return "        pop rax\n        cmp rax, 0\n        sete al\n        movzx rax, al\n        push rax"
}

func (x86Templates) AdjustStack(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("        add rsp, %d", n)
}

func (x86Templates) ExitSequence(os target.OS) string {
	switch os {
	case target.MacOS:
		return "        pop rdi\n        mov rax, 0x2000001\n        syscall"
	default: // Linux
		return "        pop rdi\n        mov rax, 60\n        syscall"
	}
}

func (x86Templates) PrintSequence() string {
	return "        pop rdi\n        call int_to_string\n        call print_string"
}

func (x86Templates) Subroutines(os target.OS) string {
	writeSyscall := "mov rax, 1"
	writeArg0 := "mov rdi, 1" // stdout
	if os == target.MacOS {
		writeSyscall = "mov rax, 0x2000004"
	}
	return fmt.Sprintf(`int_to_string:
        ; rdi holds the integer to render; leaves a NUL-terminated
        ; ASCII buffer address in rsi and its length in rdx.
        lea rsi, [itoa_buf+31]
        mov byte [rsi], 0
        mov rax, rdi
        mov rbx, 10
        mov rcx, 0
        cmp rax, 0
        jge .itoa_convert
        neg rax
        mov rcx, 1
.itoa_convert:
        dec rsi
        xor rdx, rdx
        div rbx
        add rdx, '0'
        mov [rsi], dl
        test rax, rax
        jnz .itoa_convert
        cmp rcx, 0
        je .itoa_done
        dec rsi
        mov byte [rsi], '-'
.itoa_done:
        lea rdx, [itoa_buf+32]
        sub rdx, rsi
        ret

print_string:
        ; rsi/rdx set by int_to_string.
        %s
        %s
        syscall
        ret

section .bss
itoa_buf: resb 32
`, writeArg0, writeSyscall)
}
