package booking

// Name pools for the synthetic player population, segregated by gender so
// generated records stay plausible.

// MaleNames is the male display-name pool.
var MaleNames = []string{
	"Carlos Mendoza", "Roberto Silva", "Fernando Torres", "Miguel Hernandez", "Jorge Ramirez",
	"Diego Castro", "Alejandro Reyes", "Ricardo Ortiz", "Pablo Vargas", "Eduardo Jimenez",
	"Luis Romero", "Antonio Mendez", "Javier Moreno", "Rafael Aguilar", "Manuel Castillo",
	"Oscar Vazquez", "Felipe Rojas", "Rodrigo Ibarra", "Hector Fuentes", "Sergio Campos",
	"Arturo Molina", "Marcos Guerrero", "Emilio Perez", "Ignacio Salazar", "Raul Carrillo",
	"Victor Duran", "Andres Villarreal", "Gonzalo Ochoa", "Cesar Bravo", "Ivan Delgado",
	"Mauricio Estrada", "Guillermo Vega", "Enrique Trejo", "Omar Pacheco", "Alberto Ortega",
	"Hugo Mejia", "Gustavo Luna", "Mario Rosales", "Francisco Padilla", "Armando Gallegos",
	"Bruno Cervantes", "Julio Benitez", "Ruben Cardenas", "Jaime Cortez", "Bernardo Esquivel",
	"Arturo Vallejo", "Alfredo Barrera", "Ernesto Zuniga", "Lorenzo Ponce", "Martin Gutierrez",
	"Juan Pablo Ruiz", "David Torres", "Antonio Hernández", "Francisco García", "Andrés Quintero",
}

// FemaleNames is the female display-name pool.
var FemaleNames = []string{
	"Andrea Lopez", "Patricia Ruiz", "Daniela Garcia", "Laura Martinez", "Sofia Gonzalez",
	"Valeria Morales", "Carolina Flores", "Monica Diaz", "Isabella Cruz", "Camila Soto",
	"Natalia Rivera", "Gabriela Santos", "Ana Gutierrez", "Elena Navarro", "Sandra Dominguez",
	"Paola Medina", "Veronica Pena", "Claudia Sandoval", "Mariana Leon", "Adriana Ramos",
	"Carmen Velasco", "Beatriz Nunez", "Rosa Cortes", "Gloria Espinoza", "Teresa Avila",
	"Silvia Lara", "Lorena Maldonado", "Cristina Paredes", "Julia Calderon", "Alicia Contreras",
	"Alejandra Zamora", "Karla Suarez", "Diana Rios", "Luz Herrera", "Liliana Cabrera",
	"Martha Marin", "Sara Santana", "Cecilia Acosta", "Victoria Velazquez", "Susana Arellano",
	"Olga Mercado", "Raquel Figueroa", "Irene Ayala", "Pilar Rangel", "Angela Bautista",
	"Eva Zavala", "Rocio Gamboa", "Norma Cazares", "Clara Villegas", "Alma Escobar",
	"Rosa Martinez", "Lucía Fernández", "Mónica Gómez", "Carmen López", "Elena Rodríguez",
}
