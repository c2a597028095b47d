package dto

// Mensagens de negócio devolvidas na lista errors.
const (
	MsgEmpresaNaoCadastrada = "Empresa não cadastrada"
	MsgEmpresaExistente     = "Empresa já existente."
	MsgCpfExistente         = "CPF já existente."
	MsgEmailExistente       = "E-mail já existente."
	MsgEmpresaNaoEncontrada = "Empresa não encontrada para o CNPJ %s"

	MsgValorHoraInvalido        = "Valor hora inválido."
	MsgQtdHorasTrabalhoInvalida = "Quantidade de horas de trabalho por dia inválida."
	MsgQtdHorasAlmocoInvalida   = "Quantidade de horas de almoço inválida."

	MsgFuncionarioNaoEncontrado = "Funcionário não encontrado."
	MsgFuncionarioEmailExiste   = "Email já existente."

	MsgDataVazia                 = "Data não pode ser vazia."
	MsgDataInvalida              = "Data inválida."
	MsgTipoInvalido              = "Tipo inválido."
	MsgFuncionarioNaoInformado   = "Funcionário não informado."
	MsgFuncionarioIDInexistente  = "Funcionário não encontrado. ID inexistente."
	MsgLancamentoNaoEncontrado   = "Lançamento não encontrado."
	MsgLancamentoNaoEncontradoID = "Lançamento não encontrado para o id %d"
	MsgErroRemoverLancamento     = "Erro ao remover lançamento. Registro não encontrado para o id %d"
	MsgCredenciaisInvalidas      = "Credenciais inválidas."
	MsgAcessoNegado              = "Acesso negado."
	MsgRequisicaoInvalida        = "Requisição inválida."
	MsgParametroInvalido         = "Parâmetro inválido: %s"
)
