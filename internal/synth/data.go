package synth

var firstNamesMale = []string{
	"Miguel", "Arthur", "Heitor", "Bernardo", "Davi", "Théo", "Lorenzo", "Gabriel",
	"Pedro", "Benjamin", "Matheus", "Lucas", "Nicolas", "Joaquim", "Samuel", "Henrique",
	"Rafael", "Guilherme", "Enzo", "Murilo", "Benício", "Gustavo", "Isaac", "João Miguel",
	"Lucca", "Enzo Gabriel", "Pedro Henrique", "Felipe", "João Pedro", "Pietro", "Anthony", "Daniel",
	"Bryan", "Davi Lucca", "Leonardo", "Vicente", "Eduardo", "Gael", "Antônio", "Vitor",
	"Caio", "Bruno", "Thiago", "Otávio", "Diego", "Rodrigo", "Marcelo", "Fernando",
}

var firstNamesFemale = []string{
	"Helena", "Alice", "Laura", "Maria Alice", "Valentina", "Heloísa", "Maria Clara", "Maria Cecília",
	"Maria Júlia", "Sophia", "Lorena", "Lívia", "Maria Luíza", "Cecília", "Júlia", "Isabella",
	"Manuela", "Giovanna", "Beatriz", "Mariana", "Ana Clara", "Yasmin", "Lara", "Larissa",
	"Ana Júlia", "Gabriela", "Isadora", "Rafaela", "Clara", "Camila", "Letícia", "Luana",
	"Fernanda", "Vitória", "Emanuelly", "Ana Luiza", "Carolina", "Bianca", "Nicole", "Eduarda",
	"Melissa", "Agatha", "Sarah", "Esther", "Amanda", "Bruna", "Natália", "Patrícia",
}

var lastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira", "Alves", "Pereira",
	"Lima", "Gomes", "Costa", "Ribeiro", "Martins", "Carvalho", "Almeida", "Lopes",
	"Soares", "Fernandes", "Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	"Moreira", "Nunes", "Marques", "Machado", "Mendes", "Freitas", "Cardoso", "Ramos",
	"Gonçalves", "Santana", "Teixeira", "Araújo", "Pinto", "Correia", "Moura", "Cavalcanti",
	"Monteiro", "Moraes", "Campos", "Rezende", "Duarte", "Fogaça", "Peixoto", "Cunha",
}

// states pairs each Brazilian state with its abbreviation.
var states = []struct {
	name string
	abbr string
}{
	{"Acre", "AC"}, {"Alagoas", "AL"}, {"Amapá", "AP"}, {"Amazonas", "AM"},
	{"Bahia", "BA"}, {"Ceará", "CE"}, {"Distrito Federal", "DF"}, {"Espírito Santo", "ES"},
	{"Goiás", "GO"}, {"Maranhão", "MA"}, {"Mato Grosso", "MT"}, {"Mato Grosso do Sul", "MS"},
	{"Minas Gerais", "MG"}, {"Pará", "PA"}, {"Paraíba", "PB"}, {"Paraná", "PR"},
	{"Pernambuco", "PE"}, {"Piauí", "PI"}, {"Rio de Janeiro", "RJ"}, {"Rio Grande do Norte", "RN"},
	{"Rio Grande do Sul", "RS"}, {"Rondônia", "RO"}, {"Roraima", "RR"}, {"Santa Catarina", "SC"},
	{"São Paulo", "SP"}, {"Sergipe", "SE"}, {"Tocantins", "TO"},
}

var cities = []string{
	"São Paulo", "Rio de Janeiro", "Brasília", "Salvador", "Fortaleza",
	"Belo Horizonte", "Manaus", "Curitiba", "Recife", "Goiânia",
	"Belém", "Porto Alegre", "Guarulhos", "Campinas", "São Luís",
	"Maceió", "Campo Grande", "Teresina", "João Pessoa", "Natal",
	"Osasco", "Ribeirão Preto", "Uberlândia", "Sorocaba", "Contagem",
	"Aracaju", "Feira de Santana", "Cuiabá", "Joinville", "Londrina",
	"Juiz de Fora", "Niterói", "Florianópolis", "Vitória", "Santos",
}

var neighborhoods = []string{
	"Centro", "Jardim América", "Vila Nova", "Boa Vista", "Santa Cecília",
	"Copacabana", "Savassi", "Pinheiros", "Moema", "Barra",
	"Liberdade", "Bela Vista", "São Cristóvão", "Floresta", "Santa Efigênia",
	"Lourdes", "Funcionários", "Tijuca", "Ipanema", "Aldeota",
}

var streetTypes = []string{
	"Rua", "Avenida", "Travessa", "Alameda", "Praça", "Rodovia", "Vila", "Largo",
}

var streetNames = []string{
	"das Flores", "Sete de Setembro", "XV de Novembro", "Tiradentes", "São João",
	"Getúlio Vargas", "Santos Dumont", "Dom Pedro II", "Rui Barbosa", "Marechal Deodoro",
	"Barão do Rio Branco", "José Bonifácio", "Amazonas", "Paraná", "da Paz",
	"Castro Alves", "Machado de Assis", "Independência", "Afonso Pena", "Brasil",
	"das Palmeiras", "dos Andradas", "Bahia", "Goiás", "Quinze de Agosto",
}
