package mathtext

var symbols = map[string]string{
	"times":          "×",
	"cdot":           "·",
	"div":            "÷",
	"pm":             "±",
	"mp":             "∓",
	"le":             "≤",
	"leq":            "≤",
	"ge":             "≥",
	"geq":            "≥",
	"ne":             "≠",
	"neq":            "≠",
	"approx":         "≈",
	"equiv":          "≡",
	"sim":            "∼",
	"propto":         "∝",
	"infty":          "∞",
	"to":             "→",
	"rightarrow":     "→",
	"leftarrow":      "←",
	"Rightarrow":     "⇒",
	"implies":        "⇒",
	"Leftrightarrow": "⇔",
	"iff":            "⇔",
	"in":             "∈",
	"notin":          "∉",
	"subset":         "⊂",
	"subseteq":       "⊆",
	"cup":            "∪",
	"cap":            "∩",
	"emptyset":       "∅",
	"forall":         "∀",
	"exists":         "∃",
	"sum":            "∑",
	"prod":           "∏",
	"int":            "∫",
	"partial":        "∂",
	"nabla":          "∇",
	"circ":           "∘",
	"degree":         "°",
	"angle":          "∠",
	"perp":           "⊥",
	"parallel":       "∥",
	"triangle":       "△",
	"ldots":          "…",
	"dots":           "…",
	"cdots":          "⋯",
	"mid":            "|",
	"vert":           "|",
	"lvert":          "|",
	"rvert":          "|",
	"langle":         "⟨",
	"rangle":         "⟩",
	"lfloor":         "⌊",
	"rfloor":         "⌋",
	"lceil":          "⌈",
	"rceil":          "⌉",
	"alpha":          "α",
	"beta":           "β",
	"gamma":          "γ",
	"Gamma":          "Γ",
	"delta":          "δ",
	"Delta":          "Δ",
	"epsilon":        "ε",
	"varepsilon":     "ε",
	"theta":          "θ",
	"Theta":          "Θ",
	"lambda":         "λ",
	"Lambda":         "Λ",
	"mu":             "μ",
	"pi":             "π",
	"Pi":             "Π",
	"rho":            "ρ",
	"sigma":          "σ",
	"Sigma":          "Σ",
	"tau":            "τ",
	"phi":            "φ",
	"varphi":         "φ",
	"Phi":            "Φ",
	"omega":          "ω",
	"Omega":          "Ω",
	"sin":            "sin",
	"cos":            "cos",
	"tan":            "tan",
	"log":            "log",
	"ln":             "ln",
	"exp":            "exp",
	"min":            "min",
	"max":            "max",
	"lim":            "lim",
	"gcd":            "gcd",
	"bmod":           "mod",
	"pmod":           "mod",
	"mod":            "mod",
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '−': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'n': 'ⁿ', 'i': 'ⁱ', 'x': 'ˣ', 'k': 'ᵏ', 'm': 'ᵐ', 't': 'ᵗ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '−': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'o': 'ₒ', 'x': 'ₓ', 'i': 'ᵢ', 'j': 'ⱼ',
	'n': 'ₙ', 'k': 'ₖ', 'm': 'ₘ',
}
