package qa

// System and prompt texts mirror the dataset the contract assistant was
// originally tuned on; they instruct the model to answer only from the given
// text and to reply with a {"data": [...]} JSON object.

const sectionSystem = "Eres un abogado experto en contratos de arrendamiento."

const annexSystem = "Eres un experto en contratos financieros y tablas de amortización."

const sectionPrompt = `Genera un conjunto de %d preguntas y respuestas basadas EXCLUSIVAMENTE
en el siguiente texto de una cláusula de un contrato de arrendamiento.

NO inventes información.
NO agregues elementos que no aparecen en el texto.

Devuelve un JSON válido con EXACTAMENTE esta estructura:

{
  "data": [
    {"question": "...", "answer": "..."},
    {"question": "...", "answer": "..."}
  ]
}

Título de la sección:
%s

Contenido:
%s
`

const annexPrompt = `Genera %d preguntas y respuestas (Q&A) basadas exclusivamente en
la siguiente tabla de pagos del contrato (ANEXO 1).

NO inventes información.
NO agregues pagos que no existan.
NO infieras fechas fuera de la tabla.
Las respuestas deben contener valores exactos cuando sea posible.

Tabla:
%s

Devuelve un JSON con EXACTAMENTE esta estructura:

{
  "data": [
    {"question": "...", "answer": "..."},
    {"question": "...", "answer": "..."}
  ]
}
`
